package games

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func expectValidateError(t *testing.T, want string) {
	t.Helper()
	err := Validate()
	if err == nil {
		t.Fatalf("expected validation error containing %q", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %v", want, err)
	}
}

func TestValidateOrphanDisplayName(t *testing.T) {
	orphan := uuid.MustParse("11111111-2222-4333-8444-555555555555")
	displayNames[orphan] = "طاولة"
	defer delete(displayNames, orphan)

	expectValidateError(t, "display name for unregistered identifier 11111111-2222-4333-8444-555555555555")
}

func TestValidateMissingDisplayName(t *testing.T) {
	name := displayNames[ludoID]
	delete(displayNames, ludoID)
	defer func() { displayNames[ludoID] = name }()

	expectValidateError(t, "game LUDO: no display name")
}

func TestValidateMissingIdentifier(t *testing.T) {
	saved := ordered[3]
	ordered[3] = Key("BACKGAMMON")
	defer func() { ordered[3] = saved }()

	// LUDO's name is now unreachable from any key, so it is also an orphan.
	expectValidateError(t, "game BACKGAMMON: missing identifier")
	expectValidateError(t, "display name for unregistered identifier "+ludoID.String())
}

func TestValidateDuplicateIdentifier(t *testing.T) {
	saved := ordered[1]
	ordered[1] = XO
	defer func() { ordered[1] = saved }()

	expectValidateError(t, "identifier "+xoID.String()+" already used by XO")
}

func TestValidateBadDisplayName(t *testing.T) {
	name := displayNames[chessID]
	displayNames[chessID] = "  "
	defer func() { displayNames[chessID] = name }()

	expectValidateError(t, "game CHESS: empty display name")
}

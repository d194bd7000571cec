package games

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Validate checks the registry invariants: every key has a distinct, non-nil
// identifier, every identifier has exactly one non-empty display name and no
// display name belongs to an unknown identifier. Display names must be valid
// UTF-8 in NFC form so they are stored and compared byte for byte.
func Validate() error {
	var errs []error
	seen := make(map[uuid.UUID]Key, len(ordered))
	for _, k := range ordered {
		id := LookupIdentifier(k)
		if id == uuid.Nil {
			errs = append(errs, fmt.Errorf("game %s: missing identifier", k))
			continue
		}
		if other, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("game %s: identifier %s already used by %s", k, id, other))
			continue
		}
		seen[id] = k
		name, ok := displayNames[id]
		if !ok {
			errs = append(errs, fmt.Errorf("game %s: no display name for %s", k, id))
			continue
		}
		if err := checkName(name); err != nil {
			errs = append(errs, fmt.Errorf("game %s: %w", k, err))
		}
	}
	for id := range displayNames {
		if _, ok := seen[id]; !ok {
			errs = append(errs, fmt.Errorf("display name for unregistered identifier %s", id))
		}
	}
	return errors.Join(errs...)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("empty display name")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("display name %q is not valid UTF-8", name)
	}
	if !norm.NFC.IsNormalString(name) {
		return fmt.Errorf("display name %q is not NFC normalized", name)
	}
	return nil
}

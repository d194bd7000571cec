package games

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestLookupIdentifierXO(t *testing.T) {
	got := LookupIdentifier(XO).String()
	if got != "0820413a-dc12-465d-b7e8-3a4431b5a20f" {
		t.Fatalf("unexpected XO identifier %s", got)
	}
	name, err := LookupDisplayNameString(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "XO Game" {
		t.Fatalf("expected XO Game, got %q", name)
	}
}

func TestDominoNameRoundTripsBytes(t *testing.T) {
	name, err := LookupDisplayNameString("e5f8c9a1-2b3d-4e5f-6a7b-8c9d0e1f2a3b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xd8, 0xaf, 0xd9, 0x88, 0xd9, 0x85, 0xd9, 0x8a, 0xd9, 0x86, 0xd9, 0x88}
	if string(want) != name {
		t.Fatalf("domino name bytes differ: got % x", []byte(name))
	}
	if []rune(name)[0] != 'د' {
		t.Fatalf("unexpected first rune %q", []rune(name)[0])
	}
}

func TestIdentifiersCanonicalAndDistinct(t *testing.T) {
	seen := map[string]Key{}
	for _, k := range Keys() {
		s := LookupIdentifier(k).String()
		if s == "" || s == uuid.Nil.String() {
			t.Fatalf("key %s has no identifier", k)
		}
		parsed, err := uuid.Parse(s)
		if err != nil || parsed.String() != s {
			t.Fatalf("key %s identifier %q is not canonical", k, s)
		}
		if prev, dup := seen[s]; dup {
			t.Fatalf("keys %s and %s share identifier %s", prev, k, s)
		}
		seen[s] = k
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 identifiers, got %d", len(seen))
	}
}

func TestEveryKeyHasDisplayName(t *testing.T) {
	for _, k := range Keys() {
		name, err := LookupDisplayName(LookupIdentifier(k))
		if err != nil {
			t.Fatalf("key %s: %v", k, err)
		}
		if name == "" {
			t.Fatalf("key %s: empty display name", k)
		}
	}
}

func TestLookupDisplayNameUnknown(t *testing.T) {
	_, err := LookupDisplayName(uuid.MustParse("11111111-2222-4333-8444-555555555555"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "11111111-2222-4333-8444-555555555555" {
		t.Fatalf("expected NotFoundError carrying the id, got %#v", err)
	}
	if _, err := LookupDisplayName(uuid.Nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for nil id, got %v", err)
	}
	if _, err := LookupDisplayNameString("not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for garbage, got %v", err)
	}
}

func TestLookupIdentifierOutsideEnumeration(t *testing.T) {
	if id := LookupIdentifier(Key("BACKGAMMON")); id != uuid.Nil {
		t.Fatalf("expected nil identifier, got %s", id)
	}
	if _, ok := EntryFor(Key("BACKGAMMON")); ok {
		t.Fatalf("expected no entry for unknown key")
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("  chess ")
	if err != nil || k != Chess {
		t.Fatalf("expected CHESS, got %q (%v)", k, err)
	}
	_, err = ParseKey("backgammon")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if _, err := ParseKey(""); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey for empty text, got %v", err)
	}
}

func TestKeyOf(t *testing.T) {
	for _, k := range Keys() {
		got, ok := KeyOf(LookupIdentifier(k))
		if !ok || got != k {
			t.Fatalf("KeyOf(%s) = %q, %v", k, got, ok)
		}
	}
	if _, ok := KeyOf(uuid.Nil); ok {
		t.Fatalf("nil identifier must not resolve to a key")
	}
}

func TestEntriesOrderAndCopy(t *testing.T) {
	entries := Entries()
	want := []Key{XO, Domino, Chess, Ludo}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, want[i], e.Key)
		}
	}
	ks := Keys()
	ks[0] = "MUTATED"
	if Keys()[0] != XO {
		t.Fatalf("Keys must return a copy")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("registry invalid: %v", err)
	}
}

func TestConcurrentLookupsAreStable(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, k := range Keys() {
					a, _ := LookupDisplayName(LookupIdentifier(k))
					b, _ := LookupDisplayName(LookupIdentifier(k))
					if a != b {
						t.Errorf("lookup for %s not idempotent", k)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestCheckNameRejectsBadNames(t *testing.T) {
	bad := []string{"", "   ", "\xff\xfe", "e\u0301checs"}
	for _, s := range bad {
		if err := checkName(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
	if err := checkName("لودو"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

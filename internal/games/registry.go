// Package games holds the fixed registry of games offered by the arena: the
// symbolic key of each game, the identifier its database row carries and the
// name shown to players.
//
// The identifiers are a mirror of rows owned by the database and must be kept
// identical to them. Adding a game means editing this file and redeploying.
package games

import (
	"github.com/google/uuid"
)

// Key is the symbolic name of a game. It is used in code and URLs and is never
// shown to players.
type Key string

const (
	XO     Key = "XO"
	Domino Key = "DOMINO"
	Chess  Key = "CHESS"
	Ludo   Key = "LUDO"
)

var (
	xoID     = uuid.MustParse("0820413a-dc12-465d-b7e8-3a4431b5a20f")
	dominoID = uuid.MustParse("e5f8c9a1-2b3d-4e5f-6a7b-8c9d0e1f2a3b")
	chessID  = uuid.MustParse("a3c7e2f1-9b4d-4c8a-8e6f-1d2b3c4e5f60")
	ludoID   = uuid.MustParse("b7d1f3e5-6a8c-4b2d-9e0f-2a4c6e8b1d3f")
)

// displayNames is keyed by identifier, not by Key.
var displayNames = map[uuid.UUID]string{
	xoID:     "XO Game",
	dominoID: "دومينو",
	chessID:  "شطرنج",
	ludoID:   "لودو",
}

// declaration order, used by Keys and Entries
var ordered = [...]Key{XO, Domino, Chess, Ludo}

// Entry is one row of the registry.
type Entry struct {
	Key  Key       `json:"key"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (k Key) String() string { return string(k) }

// LookupIdentifier returns the identifier of a game. Every declared Key has
// one; a Key built by converting arbitrary text yields uuid.Nil.
func LookupIdentifier(k Key) uuid.UUID {
	switch k {
	case XO:
		return xoID
	case Domino:
		return dominoID
	case Chess:
		return chessID
	case Ludo:
		return ludoID
	}
	return uuid.Nil
}

// LookupDisplayName returns the display name registered for id, or a
// *NotFoundError when id is not one of the registered games.
func LookupDisplayName(id uuid.UUID) (string, error) {
	name, ok := displayNames[id]
	if !ok {
		return "", &NotFoundError{ID: id.String()}
	}
	return name, nil
}

// LookupDisplayNameString is LookupDisplayName for identifiers in text form.
// Text that is not a UUID is reported as not found.
func LookupDisplayNameString(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", &NotFoundError{ID: s}
	}
	return LookupDisplayName(id)
}

// KeyOf is the reverse of LookupIdentifier.
func KeyOf(id uuid.UUID) (Key, bool) {
	for _, k := range ordered {
		if LookupIdentifier(k) == id {
			return k, true
		}
	}
	return "", false
}

// Keys returns all game keys in declaration order.
func Keys() []Key {
	out := make([]Key, len(ordered))
	copy(out, ordered[:])
	return out
}

// Entries returns the full registry in declaration order.
func Entries() []Entry {
	out := make([]Entry, 0, len(ordered))
	for _, k := range ordered {
		id := LookupIdentifier(k)
		out = append(out, Entry{Key: k, ID: id, Name: displayNames[id]})
	}
	return out
}

// EntryFor returns the registry row for k.
func EntryFor(k Key) (Entry, bool) {
	id := LookupIdentifier(k)
	if id == uuid.Nil {
		return Entry{}, false
	}
	return Entry{Key: k, ID: id, Name: displayNames[id]}, true
}

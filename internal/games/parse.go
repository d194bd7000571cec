package games

import (
	"github.com/google/uuid"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/keys"
)

// ParseKey maps user or client supplied text to a Key. Matching ignores case
// and surrounding whitespace.
func ParseKey(s string) (Key, error) {
	k := Key(keys.Normalize(s))
	if LookupIdentifier(k) == uuid.Nil {
		return "", &UnknownKeyError{Key: s}
	}
	return k, nil
}

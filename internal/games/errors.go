package games

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("game not found")
	ErrUnknownKey = errors.New("unknown game key")
)

// NotFoundError reports an identifier that is not in the registry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnknownKeyError reports text that does not name a game key.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown game key %q", e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

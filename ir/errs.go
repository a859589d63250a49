package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrInvalidFormat = errors.New("invalid format")
	ErrDuplicateKey  = errors.New("duplicate key")
)

// TypeError reports an accessor or conversion applied to a node of the
// wrong type.
type TypeError struct {
	Expected Type
	Actual   Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

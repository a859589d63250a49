package gomap

import (
	"errors"
	"fmt"

	"github.com/signadot/tinyjson/ir"
)

var (
	ErrNilNode      = errors.New("nil node")
	ErrMissingField = errors.New("missing field")
)

// ConvertError is a conversion failure below the top level of a tree.
type ConvertError struct {
	Path string // path of the failing node, e.g. $.users[1].age
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert error at %s: %s", e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

func atIndex(i int, err error) error {
	return at(ir.PathIndex("", i), err)
}

func atField(key string, err error) error {
	return at(ir.PathField("", key), err)
}

// at prefixes the path of err with prefix, so that errors from nested
// converters report the full path from the converted root.
func at(prefix string, err error) error {
	if ce, ok := err.(*ConvertError); ok {
		return &ConvertError{Path: prefix + ce.Path[1:], Err: ce.Err}
	}
	return &ConvertError{Path: prefix, Err: err}
}

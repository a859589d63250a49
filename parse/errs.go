package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/token"
)

var (
	ErrInvalidArgument    = token.ErrInvalidArgument
	ErrInvalidFormat      = ir.ErrInvalidFormat
	ErrDuplicateKey       = ir.ErrDuplicateKey
	ErrNotImplemented     = errors.New("not implemented")
	ErrUnrecognizedEscape = fmt.Errorf("%w: unrecognized escape", ErrInvalidFormat)
	ErrTrailingData       = fmt.Errorf("%w: trailing data", ErrInvalidFormat)
	ErrTooDeep            = errors.New("nesting too deep")
)

// SyntaxError is a parse failure at a position in the input. Err wraps one
// of the package's error kinds.
type SyntaxError struct {
	Err error
	Pos token.Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newErr(p token.Pos, kind error, format string, args ...any) error {
	return &SyntaxError{
		Err: fmt.Errorf("%w: "+format, append([]any{kind}, args...)...),
		Pos: p,
	}
}

func expectedErr(what string, got byte, p token.Pos) error {
	return newErr(p, ErrInvalidFormat, "expected %s, got %s", what, describe(got))
}

func describe(c byte) string {
	if c == token.End {
		return "end of input"
	}
	return strconv.QuoteRune(rune(c))
}

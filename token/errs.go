package token

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

package bitops

import "errors"

var (
	ErrInvalidArgument = errors.New("bitops: invalid argument")
	ErrOutOfRange      = errors.New("bitops: value out of range for key width")
)

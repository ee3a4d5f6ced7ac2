package math

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnsupported     = errors.New("unsupported operation")
)

package common

import "errors"

var (
	// ErrorInvalidInput: not a supported sequence, empty, holds a non-numeric element,
	// or a derived / supplied scale factor is not finite
	ErrorInvalidInput     = errors.New("invalid input")
	ErrorInvalidMode      = errors.New("invalid standardization mode")
	ErrorMissingParameter = errors.New("missing standardization parameter")
	// ErrorDivisionByZero: the derived avg / max / sum / std is zero
	ErrorDivisionByZero = errors.New("division by zero")
	ErrorInternal       = errors.New("internal error")
)

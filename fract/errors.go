package fract

import "errors"

var (
	// Division or modulo where the divisor has a zero raw value.
	ErrDivideByZero = errors.New("fract: division by zero")

	// A string couldn't be parsed as a number.
	ErrFormat = errors.New("fract: invalid number format")

	// An aggregate operation (sum, maximum, minimum...) received
	// no values at all.
	ErrEmptyInput = errors.New("fract: empty input")
)

package fpmath

import "github.com/tinne26/fpnum/fract"

// Returns the sum of all the given values. The sum wraps on overflow.
// With no values, [fract.ErrEmptyInput] is returned.
func Sum[T fract.Number[T]](values ...T) (T, error) {
	if len(values) == 0 { return emptyInput[T]() }
	sum := values[0]
	for _, value := range values[1:] {
		sum = sum.Add(value)
	}
	return sum, nil
}

// Returns the biggest of the given values, or [fract.ErrEmptyInput]
// if no values are given.
func Maximum[T fract.Number[T]](values ...T) (T, error) {
	if len(values) == 0 { return emptyInput[T]() }
	maximum := values[0]
	for _, value := range values[1:] {
		maximum = maximum.Max(value)
	}
	return maximum, nil
}

// Returns the smallest of the given values, or [fract.ErrEmptyInput]
// if no values are given.
func Minimum[T fract.Number[T]](values ...T) (T, error) {
	if len(values) == 0 { return emptyInput[T]() }
	minimum := values[0]
	for _, value := range values[1:] {
		minimum = minimum.Min(value)
	}
	return minimum, nil
}

// Returns [Sum]() divided by the number of values, using fixed
// point division. Like [Sum](), the intermediate sum may wrap.
func Average[T fract.Number[T]](values ...T) (T, error) {
	sum, err := Sum(values...)
	if err != nil { return sum, err }
	return sum.Div(sum.FromInt(len(values))), nil
}

func emptyInput[T fract.Number[T]]() (T, error) {
	var zero T
	return zero, fract.ErrEmptyInput
}

// edecimal is a utility subpackage to move values between the fract
// fixed point variants and arbitrary precision decimals from
// [github.com/shopspring/decimal].
//
// Since every fract value is an integer divided by a power of two, it
// always has an exact finite decimal expansion, so [ToDecimal]() is
// lossless. The opposite direction rounds to the nearest raw value,
// with ties to even, like [fract.Value.FromFloat64]().
package edecimal

import "fmt"
import "github.com/shopspring/decimal"

import "github.com/tinne26/fpnum/fract"

// Returns the exact decimal representation of the given value.
func ToDecimal[T fract.Number[T]](value T) decimal.Decimal {
	shift := value.Shift()
	scale := decimal.NewFromInt(int64(1) << shift)
	// 1/2^n has exactly n decimal digits
	return decimal.NewFromInt(value.RawInt64()).DivRound(scale, int32(shift))
}

// Converts a decimal to the nearest value of the given variant, with
// ties resolved to the even raw value. Like any other fract construction,
// values out of range wrap silently.
func FromDecimal[T fract.Number[T]](value decimal.Decimal) T {
	var zero T
	scale := decimal.NewFromInt(int64(1) << zero.Shift())
	return zero.FromRawInt64(value.Mul(scale).RoundBank(0).IntPart())
}

// Parses a decimal string and converts it with [FromDecimal](). Unlike
// [fract.Parse](), the string never goes through float64, so long
// literals are rounded only once. On failure, the returned error
// wraps [fract.ErrFormat].
func FromDecimalString[T fract.Number[T]](str string) (T, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w %q: %w", fract.ErrFormat, str, err)
	}
	return FromDecimal[T](value), nil
}

// efixed is a utility subpackage for moving values between the fract
// fixed point variants and the [fixed.Int26_6] and [fixed.Int52_12]
// types used by golang.org/x/image font packages. You will only need
// it if you are passing fract values to sfnt, opentype or similar.
//
// All conversions go through float64, like any other boundary with
// the fract package, and round to the nearest target value (ties
// away from zero). Values that can't be represented by the target
// type make the functions panic.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
// [fixed.Int52_12]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int52_12
package efixed

import "math"
import "strconv"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fpnum/fract"

// Converts the given value to the nearest fixed.Int26_6.
func ToInt26_6[T fract.Number[T]](value T) fixed.Int26_6 {
	return fixed.Int26_6(toScaled(value.ToFloat64(), 6, 32, "fixed.Int26_6"))
}

// Converts a fixed.Int26_6 to the given variant. The float64 step
// is always exact, so the only rounding is the one done by
// FromFloat64() on the target variant.
func FromInt26_6[T fract.Number[T]](value fixed.Int26_6) T {
	var zero T
	return zero.FromFloat64(float64(value)/64.0)
}

// Converts the given value to the nearest fixed.Int52_12.
func ToInt52_12[T fract.Number[T]](value T) fixed.Int52_12 {
	return fixed.Int52_12(toScaled(value.ToFloat64(), 12, 64, "fixed.Int52_12"))
}

// Converts a fixed.Int52_12 to the given variant.
func FromInt52_12[T fract.Number[T]](value fixed.Int52_12) T {
	var zero T
	return zero.FromFloat64(float64(value)/4096.0)
}

// Creates a fixed.Point26_6 from a pair of coordinates.
func ToPoint26_6[T fract.Number[T]](x, y T) fixed.Point26_6 {
	return fixed.Point26_6{ X: ToInt26_6(x), Y: ToInt26_6(y) }
}

// Returns the coordinates of a fixed.Point26_6.
func FromPoint26_6[T fract.Number[T]](point fixed.Point26_6) (x, y T) {
	return FromInt26_6[T](point.X), FromInt26_6[T](point.Y)
}

// Creates a fixed.Rectangle26_6 from a set of four coordinates.
// Like with [image.Rectangle], max is not included.
func ToRectangle26_6[T fract.Number[T]](minX, minY, maxX, maxY T) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: ToPoint26_6(minX, minY),
		Max: ToPoint26_6(maxX, maxY),
	}
}

// Scales the value by 2^shift and rounds it, panicking if the result
// doesn't fit in a signed integer of the given bit width.
func toScaled(value float64, shift int, bits int, target string) int64 {
	scaled := math.Round(math.Ldexp(value, shift))
	limit  := math.Ldexp(1, bits - 1) // exact for both 32 and 64 bits
	if scaled >= limit || scaled < -limit || math.IsNaN(scaled) {
		given := strconv.FormatFloat(value, 'f', -1, 64)
		panic("can't convert " + given + " to " + target + ", the value is out of range")
	}
	return int64(scaled)
}

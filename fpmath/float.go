package fpmath

import "math"
import "github.com/tinne26/fpnum/fract"

// Every function in this file converts its operands to float64,
// applies the [math] package equivalent and quantizes the result
// back with FromFloat64().

func apply[T fract.Number[T]](x T, fn func(float64) float64) T {
	return x.FromFloat64(fn(x.ToFloat64()))
}

func apply2[T fract.Number[T]](x, y T, fn func(float64, float64) float64) T {
	return x.FromFloat64(fn(x.ToFloat64(), y.ToFloat64()))
}

func Sqrt[T fract.Number[T]](x T) T { return apply(x, math.Sqrt) }
func Cbrt[T fract.Number[T]](x T) T { return apply(x, math.Cbrt) }
func Pow[T fract.Number[T]](x, y T) T { return apply2(x, y, math.Pow) }
func Hypot[T fract.Number[T]](x, y T) T { return apply2(x, y, math.Hypot) }

func Exp[T fract.Number[T]](x T) T { return apply(x, math.Exp) }
func Exp2[T fract.Number[T]](x T) T { return apply(x, math.Exp2) }
func Expm1[T fract.Number[T]](x T) T { return apply(x, math.Expm1) }

// Returns 10 raised to x.
func Exp10[T fract.Number[T]](x T) T {
	return apply(x, func(v float64) float64 { return math.Pow(10, v) })
}

func Log[T fract.Number[T]](x T) T { return apply(x, math.Log) }
func Log2[T fract.Number[T]](x T) T { return apply(x, math.Log2) }
func Log10[T fract.Number[T]](x T) T { return apply(x, math.Log10) }

// Returns the logarithm of x in the given base.
func LogBase[T fract.Number[T]](x, base T) T {
	return apply2(x, base, func(v, b float64) float64 { return math.Log(v)/math.Log(b) })
}

// Returns log(1) + x. Notice that this is *not* log(1 + x): since
// log(1) == 0, the result is x itself, quantized through float64.
// The formula is kept for compatibility with existing results.
func Log1p[T fract.Number[T]](x T) T {
	return apply(x, func(v float64) float64 { return math.Log(1) + v })
}

func Sin[T fract.Number[T]](x T) T { return apply(x, math.Sin) }
func Cos[T fract.Number[T]](x T) T { return apply(x, math.Cos) }
func Tan[T fract.Number[T]](x T) T { return apply(x, math.Tan) }

func SinCos[T fract.Number[T]](x T) (sin, cos T) {
	s, c := math.Sincos(x.ToFloat64())
	return x.FromFloat64(s), x.FromFloat64(c)
}

func Asin[T fract.Number[T]](x T) T { return apply(x, math.Asin) }
func Acos[T fract.Number[T]](x T) T { return apply(x, math.Acos) }
func Atan[T fract.Number[T]](x T) T { return apply(x, math.Atan) }
func Atan2[T fract.Number[T]](y, x T) T { return apply2(y, x, math.Atan2) }

func Sinh[T fract.Number[T]](x T) T { return apply(x, math.Sinh) }
func Cosh[T fract.Number[T]](x T) T { return apply(x, math.Cosh) }
func Tanh[T fract.Number[T]](x T) T { return apply(x, math.Tanh) }
func Asinh[T fract.Number[T]](x T) T { return apply(x, math.Asinh) }
func Acosh[T fract.Number[T]](x T) T { return apply(x, math.Acosh) }
func Atanh[T fract.Number[T]](x T) T { return apply(x, math.Atanh) }

func Floor[T fract.Number[T]](x T) T { return apply(x, math.Floor) }
func Ceiling[T fract.Number[T]](x T) T { return apply(x, math.Ceil) }
func Truncate[T fract.Number[T]](x T) T { return apply(x, math.Trunc) }

// Rounds to the nearest integer, with ties to even.
func Round[T fract.Number[T]](x T) T { return apply(x, math.RoundToEven) }

// Rounds to the given number of decimal digits, with ties to even.
func RoundDigits[T fract.Number[T]](x T, digits int) T {
	pow := math.Pow10(digits)
	return apply(x, func(v float64) float64 { return math.RoundToEven(v*pow)/pow })
}

func DegreesToRadians[T fract.Number[T]](x T) T {
	return apply(x, func(v float64) float64 { return v*math.Pi/180 })
}

func RadiansToDegrees[T fract.Number[T]](x T) T {
	return apply(x, func(v float64) float64 { return v*180/math.Pi })
}

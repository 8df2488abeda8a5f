package fpmath

import "github.com/tinne26/fpnum/fract"

func Add[T fract.Number[T]](x, y T) T { return x.Add(y) }
func Subtract[T fract.Number[T]](x, y T) T { return x.Sub(y) }
func Multiply[T fract.Number[T]](x, y T) T { return x.Mul(y) }

// Panics with [fract.ErrDivideByZero] if y is zero.
func Divide[T fract.Number[T]](x, y T) T { return x.Div(y) }

// Raw remainder of x and y. Panics with [fract.ErrDivideByZero] if
// y is zero.
func Modulus[T fract.Number[T]](x, y T) T { return x.Mod(y) }

func Negate[T fract.Number[T]](x T) T { return x.Neg() }
func Abs[T fract.Number[T]](x T) T { return x.Abs() }
func Increment[T fract.Number[T]](x T) T { return x.Inc() }
func Decrement[T fract.Number[T]](x T) T { return x.Dec() }

func Max[T fract.Number[T]](x, y T) T { return x.Max(y) }
func Min[T fract.Number[T]](x, y T) T { return x.Min(y) }

// Returns the operand with the biggest absolute value, or x on ties.
func MaxMagnitude[T fract.Number[T]](x, y T) T { return x.MaxMagnitude(y) }

// Returns the operand with the smallest absolute value, or x on ties.
func MinMagnitude[T fract.Number[T]](x, y T) T { return x.MinMagnitude(y) }

// Panics if low > high.
func Clamp[T fract.Number[T]](x, low, high T) T { return x.Clamp(low, high) }

func Sign[T fract.Number[T]](x T) int { return x.Sign() }
func Compare[T fract.Number[T]](x, y T) int { return x.Cmp(y) }
func Equals[T fract.Number[T]](x, y T) bool { return x.Equal(y) }

// Returns the magnitude of x with the sign of y. A zero y counts
// as positive.
func CopySign[T fract.Number[T]](x, y T) T {
	magnitude := x.Abs()
	if y.IsNegative() { return magnitude.Neg() }
	return magnitude
}

// Returns x*x, computed with fixed point multiplication.
func Square[T fract.Number[T]](x T) T { return x.Mul(x) }

// Returns x*x*x, computed with fixed point multiplication.
func Cube[T fract.Number[T]](x T) T { return x.Mul(x).Mul(x) }

// Returns 1/x. Panics with [fract.ErrDivideByZero] if x is zero.
func Reciprocal[T fract.Number[T]](x T) T { return x.One().Div(x) }

// Linear interpolation between a and b: a + (b - a)*t.
func Lerp[T fract.Number[T]](a, b, t T) T {
	return a.Add(b.Sub(a).Mul(t))
}

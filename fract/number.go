package fract

// Number is the contract shared by all fixed point variants. It's
// written in terms of the type itself, so generic code can be
// instantiated with any of them:
//   func Half[T fract.Number[T]](x T) T {
//       return x.Div(x.FromInt(2))
//   }
//
// Constructors and limits are methods too. Generic code calls them on
// the zero value of T (var zero T; zero.FromFloat64(...)), which gets
// resolved statically for each instantiation.
type Number[T any] interface {
	comparable
	String() string

	// layout
	Shift() uint
	Precision() int
	Bits() int
	RawInt64() int64

	// construction
	FromRawInt64(int64) T
	FromFloat64(float64) T
	FromFloat32(float32) T
	FromInt(int) T
	FromInt64(int64) T
	Parse(string) (T, error)

	// conversion
	ToFloat64() float64
	ToFloat32() float32
	ToInt() int
	ToInt64() int64

	// limits
	Zero() T
	One() T
	NegOne() T
	Epsilon() T
	MaxValue() T
	MinValue() T

	// arithmetic
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	TryDiv(T) (T, error)
	Mod(T) T
	TryMod(T) (T, error)
	Inc() T
	Dec() T
	Neg() T
	Abs() T

	// comparison
	Cmp(T) int
	Less(T) bool
	Equal(T) bool
	Sign() int
	Max(T) T
	Min(T) T
	Clamp(T, T) T
	MaxMagnitude(T) T
	MinMagnitude(T) T

	// classification
	IsZero() bool
	IsNegative() bool
	IsPositive() bool
	IsInteger() bool
	IsEvenInteger() bool
	IsOddInteger() bool
	IsNormal() bool
	IsFinite() bool
	IsInfinity() bool
	IsNaN() bool
	IsSubnormal() bool
	IsCanonical() bool
}

// compile time checks
func isNumber[T Number[T]]() {}
var _ = isNumber[FP2I]
var _ = isNumber[FP2]
var _ = isNumber[FP4]
var _ = isNumber[FP6]
var _ = isNumber[FP8]

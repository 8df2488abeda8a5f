package fract

import "unsafe"
import "golang.org/x/exp/constraints"

// Converts a value between two variants. The conversion always goes
// through float64: the source is converted with ToFloat64() and the
// target is created with FromFloat64(). There's no direct raw shift,
// so going from a high precision variant to a low precision one rounds
// once in the float64 domain and once more when quantizing.
func Convert[To Number[To], From Number[From]](value From) To {
	var target To
	return target.FromFloat64(value.ToFloat64())
}

// Creates a value of the given variant from a float64.
func New[T Number[T]](value float64) T {
	var zero T
	return zero.FromFloat64(value)
}

// Creates a value of the given variant from any integer type. Values
// that don't fit wrap.
func FromInteger[T Number[T], I constraints.Integer](value I) T {
	var zero T
	return zero.FromInt64(int64(value))
}

// Creates a value of the given variant from any float type. Notice
// that float32 values are truncated while float64 values are rounded
// (see [Value.FromFloat32]() and [Value.FromFloat64]()).
func FromFloat[T Number[T], F constraints.Float](value F) T {
	var zero T
	if unsafe.Sizeof(value) == 4 { return zero.FromFloat32(float32(value)) }
	return zero.FromFloat64(float64(value))
}

// Parses a value of the given variant. See [Value.Parse]().
func Parse[T Number[T]](str string) (T, error) {
	var zero T
	return zero.Parse(str)
}

// Like [Parse](), but panics on error. Meant for literals.
func MustParse[T Number[T]](str string) T {
	value, err := Parse[T](str)
	if err != nil { panic(err) }
	return value
}

// ---- per variant conversion shortcuts ----

func (self Value[R, F]) ToFP2I() FP2I { return Convert[FP2I](self) }
func (self Value[R, F]) ToFP2() FP2 { return Convert[FP2](self) }
func (self Value[R, F]) ToFP4() FP4 { return Convert[FP4](self) }
func (self Value[R, F]) ToFP6() FP6 { return Convert[FP6](self) }
func (self Value[R, F]) ToFP8() FP8 { return Convert[FP8](self) }

package fract

import "math"
import "unsafe"

// Generic fixed point value. The only stored state is the raw
// integer; the real number represented is raw / (1 << F.Shift()).
//
// Values are immutable: every operation returns a new value. The zero
// value is a valid 0.0. Two values are equal (even through ==) if and
// only if their raw values are equal.
//
// You will normally use one of the predefined aliases ([FP2I], [FP2],
// [FP4], [FP6], [FP8]) instead of instantiating Value directly.
type Value[R Raw, F Format] struct {
	raw R
}

// Returns the raw scaled integer.
func (self Value[R, F]) Raw() R { return self.raw }

// Returns the raw value widened to int64.
func (self Value[R, F]) RawInt64() int64 { return int64(self.raw) }

// Returns the number of fractional bits of the variant.
func (self Value[R, F]) Shift() uint {
	var format F
	return format.Shift()
}

// Returns the raw value that represents 1.0 (1 << Shift()).
func (self Value[R, F]) Scale() R {
	return R(1) << self.Shift()
}

// Returns the number of decimal digits used by [Value.String]().
func (self Value[R, F]) Precision() int {
	var format F
	return format.Precision()
}

// Returns the width of the raw integer, either 32 or 64.
func (self Value[R, F]) Bits() int {
	return int(unsafe.Sizeof(self.raw))*8
}

// Creates a value directly from its raw representation.
func (self Value[R, F]) FromRaw(raw R) Value[R, F] {
	return Value[R, F]{ raw: raw }
}

// Like [Value.FromRaw](), but from an int64. For the 32-bit
// variant, the value is truncated to its lowest 32 bits.
func (self Value[R, F]) FromRawInt64(raw int64) Value[R, F] {
	return Value[R, F]{ raw: R(raw) }
}

// Converts a float64 to the closest value, with ties resolved
// to the even raw value. Doesn't account for NaNs, infinities
// nor overflows: if value*Scale() doesn't fit the raw integer,
// the result is undefined.
func (self Value[R, F]) FromFloat64(value float64) Value[R, F] {
	return Value[R, F]{ raw: R(math.RoundToEven(value*float64(self.Scale()))) }
}

// Converts a float32 to a value, truncating toward zero. Unlike
// [Value.FromFloat64](), no rounding is done, and the product is
// computed with float32 precision.
func (self Value[R, F]) FromFloat32(value float32) Value[R, F] {
	return Value[R, F]{ raw: R(value*float32(self.Scale())) }
}

// Fast conversion from int. If the int is not representable,
// the raw value wraps.
func (self Value[R, F]) FromInt(value int) Value[R, F] {
	return self.FromInt64(int64(value))
}

func (self Value[R, F]) FromInt64(value int64) Value[R, F] {
	return Value[R, F]{ raw: R(value << self.Shift()) }
}

func (self Value[R, F]) ToFloat64() float64 {
	return float64(self.raw)/float64(self.Scale())
}

func (self Value[R, F]) ToFloat32() float32 {
	return float32(self.ToFloat64())
}

// Returns the integer part of the value, truncating toward zero.
func (self Value[R, F]) ToInt() int {
	return int(self.raw/self.Scale())
}

// Same as [Value.ToInt](), but returning an int64.
func (self Value[R, F]) ToInt64() int64 {
	return int64(self.raw/self.Scale())
}

// ---- limits ----

func (self Value[R, F]) Zero() Value[R, F] { return Value[R, F]{} }
func (self Value[R, F]) One() Value[R, F] { return Value[R, F]{ raw: self.Scale() } }
func (self Value[R, F]) NegOne() Value[R, F] { return Value[R, F]{ raw: -self.Scale() } }

// Returns the smallest positive value (raw value 1).
func (self Value[R, F]) Epsilon() Value[R, F] { return Value[R, F]{ raw: 1 } }

// Returns the biggest representable value.
func (self Value[R, F]) MaxValue() Value[R, F] {
	return Value[R, F]{ raw: ^self.minRaw() }
}

// Returns the smallest representable value.
func (self Value[R, F]) MinValue() Value[R, F] {
	return Value[R, F]{ raw: self.minRaw() }
}

func (self Value[R, F]) minRaw() R {
	return R(1) << (self.Bits() - 1)
}

package fract

// Notice: none of the operations in this file check for overflows.
//         Results wrap exactly like the underlying two's complement
//         integers do, and that's part of the contract.

func (self Value[R, F]) Add(other Value[R, F]) Value[R, F] {
	return Value[R, F]{ raw: self.raw + other.raw }
}

func (self Value[R, F]) Sub(other Value[R, F]) Value[R, F] {
	return Value[R, F]{ raw: self.raw - other.raw }
}

// Returns (self * other) >> Shift(). The product is computed on 64
// bits, so for the 64-bit variants it can overflow before the shift
// is applied. 32-bit values never overflow the intermediate product,
// but the result is still truncated back to 32 bits.
func (self Value[R, F]) Mul(other Value[R, F]) Value[R, F] {
	product := int64(self.raw)*int64(other.raw)
	return Value[R, F]{ raw: R(product >> self.Shift()) }
}

// Returns (self << Shift()) / other, computed on 64 bits and
// truncated toward zero. Panics with [ErrDivideByZero] if other
// has a zero raw value. See also [Value.TryDiv]().
func (self Value[R, F]) Div(other Value[R, F]) Value[R, F] {
	if other.raw == 0 { panic(ErrDivideByZero) }
	return self.div(other)
}

// Same as [Value.Div](), but returning [ErrDivideByZero] instead
// of panicking.
func (self Value[R, F]) TryDiv(other Value[R, F]) (Value[R, F], error) {
	if other.raw == 0 { return Value[R, F]{}, ErrDivideByZero }
	return self.div(other), nil
}

func (self Value[R, F]) div(other Value[R, F]) Value[R, F] {
	shifted := int64(self.raw) << self.Shift()
	return Value[R, F]{ raw: R(shifted/int64(other.raw)) }
}

// Returns the remainder of the raw values, with no scaling involved
// (the sign follows self). Panics with [ErrDivideByZero] if other has
// a zero raw value.
func (self Value[R, F]) Mod(other Value[R, F]) Value[R, F] {
	if other.raw == 0 { panic(ErrDivideByZero) }
	return Value[R, F]{ raw: self.raw % other.raw }
}

// Same as [Value.Mod](), but returning [ErrDivideByZero] instead
// of panicking.
func (self Value[R, F]) TryMod(other Value[R, F]) (Value[R, F], error) {
	if other.raw == 0 { return Value[R, F]{}, ErrDivideByZero }
	return Value[R, F]{ raw: self.raw % other.raw }, nil
}

// Returns self + 1.0.
func (self Value[R, F]) Inc() Value[R, F] {
	return Value[R, F]{ raw: self.raw + self.Scale() }
}

// Returns self - 1.0.
func (self Value[R, F]) Dec() Value[R, F] {
	return Value[R, F]{ raw: self.raw - self.Scale() }
}

// Returns -self. MinValue().Neg() == MinValue().
func (self Value[R, F]) Neg() Value[R, F] {
	return Value[R, F]{ raw: -self.raw }
}

// Returns the absolute value. Like [Value.Neg](), the absolute
// value of MinValue() is MinValue() itself.
func (self Value[R, F]) Abs() Value[R, F] {
	if self.raw < 0 { return Value[R, F]{ raw: -self.raw } }
	return self
}

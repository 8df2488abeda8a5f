package fract

// Returns -1 if self < other, 0 if self == other and
// +1 if self > other.
func (self Value[R, F]) Cmp(other Value[R, F]) int {
	if self.raw < other.raw { return -1 }
	if self.raw > other.raw { return +1 }
	return 0
}

func (self Value[R, F]) Less(other Value[R, F]) bool {
	return self.raw < other.raw
}

func (self Value[R, F]) Equal(other Value[R, F]) bool {
	return self.raw == other.raw
}

// Returns -1, 0 or +1 depending on the sign of the value.
func (self Value[R, F]) Sign() int {
	if self.raw < 0 { return -1 }
	if self.raw > 0 { return +1 }
	return 0
}

func (self Value[R, F]) Max(other Value[R, F]) Value[R, F] {
	if other.raw > self.raw { return other }
	return self
}

func (self Value[R, F]) Min(other Value[R, F]) Value[R, F] {
	if other.raw < self.raw { return other }
	return self
}

// Returns the value limited to the [low, high] range. It
// will panic if low > high.
func (self Value[R, F]) Clamp(low, high Value[R, F]) Value[R, F] {
	if low.raw > high.raw { panic("Clamp() with low > high") }
	if self.raw < low.raw { return low }
	if self.raw > high.raw { return high }
	return self
}

// Returns the operand with the greatest absolute raw value. On
// ties, self is returned.
func (self Value[R, F]) MaxMagnitude(other Value[R, F]) Value[R, F] {
	if magnitude(other.raw) > magnitude(self.raw) { return other }
	return self
}

// Returns the operand with the smallest absolute raw value. On
// ties, self is returned.
func (self Value[R, F]) MinMagnitude(other Value[R, F]) Value[R, F] {
	if magnitude(other.raw) < magnitude(self.raw) { return other }
	return self
}

// The magnitude is taken on unsigned 64 bits so MinValue() still
// counts as the biggest magnitude instead of wrapping.
func magnitude[R Raw](raw R) uint64 {
	if raw < 0 { return uint64(-int64(raw)) }
	return uint64(raw)
}

// ---- classification ----

func (self Value[R, F]) IsZero() bool { return self.raw == 0 }
func (self Value[R, F]) IsNegative() bool { return self.raw < 0 }
func (self Value[R, F]) IsPositive() bool { return self.raw > 0 }

// Returns whether the value has no fractional part.
func (self Value[R, F]) IsInteger() bool {
	return self.raw % self.Scale() == 0
}

func (self Value[R, F]) IsEvenInteger() bool {
	return self.IsInteger() && (self.raw/self.Scale()) % 2 == 0
}

func (self Value[R, F]) IsOddInteger() bool {
	return self.IsInteger() && (self.raw/self.Scale()) % 2 != 0
}

// Returns whether the value is different from zero.
func (self Value[R, F]) IsNormal() bool { return self.raw != 0 }

// Fixed point values are always finite, canonical real numbers.
// The following predicates exist only for parity with floats.

func (self Value[R, F]) IsFinite() bool { return true }
func (self Value[R, F]) IsInfinity() bool { return false }
func (self Value[R, F]) IsNaN() bool { return false }
func (self Value[R, F]) IsSubnormal() bool { return false }
func (self Value[R, F]) IsCanonical() bool { return true }

package fract

// Raw is the constraint for the integer types that can back a [Value].
type Raw interface {
	~int32 | ~int64
}

// Format describes the layout of a fixed point variant. Implementations
// are zero-size marker types used only as type parameters, so all
// the methods are resolved at compile time.
type Format interface {
	// Number of bits reserved for the fractional part.
	Shift() uint

	// Number of decimal digits used when formatting. This is
	// unrelated to the actual binary precision, which is fully
	// determined by Shift().
	Precision() int
}

// Format for 2 display digits, with 7 fractional bits.
type Digits2 struct{}
func (Digits2) Shift() uint { return 7 }
func (Digits2) Precision() int { return 2 }

// Format for 4 display digits, with 14 fractional bits.
type Digits4 struct{}
func (Digits4) Shift() uint { return 14 }
func (Digits4) Precision() int { return 4 }

// Format for 6 display digits, with 20 fractional bits.
type Digits6 struct{}
func (Digits6) Shift() uint { return 20 }
func (Digits6) Precision() int { return 6 }

// Format for 8 display digits, with 27 fractional bits.
type Digits8 struct{}
func (Digits8) Shift() uint { return 27 }
func (Digits8) Precision() int { return 8 }

// Predefined variants.
type (
	FP2I = Value[int32, Digits2]
	FP2  = Value[int64, Digits2]
	FP4  = Value[int64, Digits4]
	FP6  = Value[int64, Digits6]
	FP8  = Value[int64, Digits8]
)

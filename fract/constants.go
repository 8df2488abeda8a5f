package fract

// Raw values representing 1.0 for each format.
const (
	OneDigits2 = 1 << 7  // 128
	OneDigits4 = 1 << 14 // 16384
	OneDigits6 = 1 << 20 // 1048576
	OneDigits8 = 1 << 27 // 134217728
)

// Limits of the 32-bit [FP2I] variant.
const (
	MaxFP2IRaw int32 = +0x7FFFFFFF
	MinFP2IRaw int32 = -0x7FFFFFFF - 1
	MaxFP2IInt int = +16777215
	MinFP2IInt int = -16777216
	MaxFP2IFloat64 float64 = +16777215.9921875
	MinFP2IFloat64 float64 = -16777216
)

// Limits shared by all the 64-bit variants.
const (
	MaxRaw64 int64 = +0x7FFFFFFFFFFFFFFF
	MinRaw64 int64 = -0x7FFFFFFFFFFFFFFF - 1
)

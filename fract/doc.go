// The fract package defines a family of fixed point number types
// built on top of a single generic [Value] type.
//
// A fixed point value stores only a scaled integer (the "raw" value).
// The real number represented is raw / (1 << Shift), so with a shift
// of 14, a raw value of 16384 means 1.0 and 24576 means 1.5. Every raw
// bit pattern is a valid and canonical value: there are no NaNs,
// infinities nor negative zeros.
//
// Five variants are predefined:
//   - [FP2I]: 32-bit raw, shift 7, displayed with 2 decimals.
//   - [FP2]: 64-bit raw, shift 7, displayed with 2 decimals.
//   - [FP4]: 64-bit raw, shift 14, displayed with 4 decimals.
//   - [FP6]: 64-bit raw, shift 20, displayed with 6 decimals.
//   - [FP8]: 64-bit raw, shift 27, displayed with 8 decimals.
//
// All variants satisfy the [Number] constraint, which is what the
// fpmath and fpconst subpackages are written against. Conversions
// between variants always go through float64 (see [Convert]).
//
// Arithmetic follows the rules of the underlying integers: additions,
// subtractions and multiplications wrap silently on overflow, while
// division and modulo by a zero raw value panic with [ErrDivideByZero].
package fract

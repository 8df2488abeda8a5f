// The fpmath package is a stateless, generic math library for the
// fixed point types defined in the fract package. Every function
// works with any type satisfying [fract.Number].
//
// Functions fall into two groups:
//   - Native: they delegate to the fixed point operators and never
//     leave the integer domain (Add, Multiply, Abs, MaxMagnitude,
//     Square, Cube, Lerp, Sum...). Overflows wrap and products are
//     truncated exactly like the underlying operators do.
//   - Float64 round-trip: the operands are converted with ToFloat64(),
//     the equivalent function from the [math] package is applied, and
//     the result is quantized back with FromFloat64() (Sqrt, Sin, Exp,
//     Log, Floor...). The precision of these can't ever be better
//     than float64, and is then limited by the variant's own shift.
//
// Round-trip functions don't validate their domains: results that
// are NaN or infinite in float64 (e.g. Sqrt of a negative value) give
// undefined raw values, same as FromFloat64() would.
package fpmath

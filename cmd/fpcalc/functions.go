package main

import "github.com/tinne26/fpnum/fract"
import "github.com/tinne26/fpnum/fpmath"

// A function that can be used with the "eval" command. Arity -1
// means any number of arguments.
type function[T fract.Number[T]] struct {
	arity int
	call  func(args []T) (T, error)
}

func unary[T fract.Number[T]](fn func(T) T) function[T] {
	return function[T]{ 1, func(args []T) (T, error) { return fn(args[0]), nil } }
}

func binary[T fract.Number[T]](fn func(T, T) T) function[T] {
	return function[T]{ 2, func(args []T) (T, error) { return fn(args[0], args[1]), nil } }
}

func variadic[T fract.Number[T]](fn func(...T) (T, error)) function[T] {
	return function[T]{ -1, func(args []T) (T, error) { return fn(args...) } }
}

func functions[T fract.Number[T]]() map[string]function[T] {
	return map[string]function[T]{
		"add": binary(fpmath.Add[T]),
		"sub": binary(fpmath.Subtract[T]),
		"mul": binary(fpmath.Multiply[T]),
		"div": { 2, func(args []T) (T, error) { return args[0].TryDiv(args[1]) } },
		"mod": { 2, func(args []T) (T, error) { return args[0].TryMod(args[1]) } },
		"neg": unary(fpmath.Negate[T]),
		"abs": unary(fpmath.Abs[T]),
		"inc": unary(fpmath.Increment[T]),
		"dec": unary(fpmath.Decrement[T]),
		"maxmag": binary(fpmath.MaxMagnitude[T]),
		"minmag": binary(fpmath.MinMagnitude[T]),
		"copysign": binary(fpmath.CopySign[T]),
		"square": unary(fpmath.Square[T]),
		"cube": unary(fpmath.Cube[T]),
		"lerp": { 3, func(args []T) (T, error) { return fpmath.Lerp(args[0], args[1], args[2]), nil } },
		"clamp": { 3, func(args []T) (T, error) {
			if args[1].Cmp(args[2]) > 0 { return args[0], usageErrorf("clamp with low > high") }
			return fpmath.Clamp(args[0], args[1], args[2]), nil
		}},

		"sqrt": unary(fpmath.Sqrt[T]),
		"cbrt": unary(fpmath.Cbrt[T]),
		"pow": binary(fpmath.Pow[T]),
		"hypot": binary(fpmath.Hypot[T]),
		"exp": unary(fpmath.Exp[T]),
		"exp2": unary(fpmath.Exp2[T]),
		"exp10": unary(fpmath.Exp10[T]),
		"expm1": unary(fpmath.Expm1[T]),
		"log": unary(fpmath.Log[T]),
		"log2": unary(fpmath.Log2[T]),
		"log10": unary(fpmath.Log10[T]),
		"logb": binary(fpmath.LogBase[T]),
		"log1p": unary(fpmath.Log1p[T]),
		"sin": unary(fpmath.Sin[T]),
		"cos": unary(fpmath.Cos[T]),
		"tan": unary(fpmath.Tan[T]),
		"asin": unary(fpmath.Asin[T]),
		"acos": unary(fpmath.Acos[T]),
		"atan": unary(fpmath.Atan[T]),
		"atan2": binary(fpmath.Atan2[T]),
		"sinh": unary(fpmath.Sinh[T]),
		"cosh": unary(fpmath.Cosh[T]),
		"tanh": unary(fpmath.Tanh[T]),
		"asinh": unary(fpmath.Asinh[T]),
		"acosh": unary(fpmath.Acosh[T]),
		"atanh": unary(fpmath.Atanh[T]),
		"floor": unary(fpmath.Floor[T]),
		"ceil": unary(fpmath.Ceiling[T]),
		"trunc": unary(fpmath.Truncate[T]),
		"round": unary(fpmath.Round[T]),
		"rad": unary(fpmath.DegreesToRadians[T]),
		"deg": unary(fpmath.RadiansToDegrees[T]),

		"sum": variadic(fpmath.Sum[T]),
		"max": variadic(fpmath.Maximum[T]),
		"min": variadic(fpmath.Minimum[T]),
		"avg": variadic(fpmath.Average[T]),
	}
}

package main

import "fmt"
import "strings"

import "github.com/tinne26/fpnum/fract"
import "github.com/tinne26/fpnum/fpconst"

var variantNames = []string{"fp2i", "fp2", "fp4", "fp6", "fp8"}

func isVariant(name string) bool {
	for _, variant := range variantNames {
		if variant == name { return true }
	}
	return false
}

// Runs the given command with the variant selected in the config.
// Each case instantiates the whole calculator for a concrete type.
func (self *app) dispatch(command string, args []string) error {
	switch self.config.Variant {
	case "fp2i": return runCommand(self, newCalculator(fpconst.FP2I()), command, args)
	case "fp2" : return runCommand(self, newCalculator(fpconst.FP2()), command, args)
	case "fp4" : return runCommand(self, newCalculator(fpconst.FP4()), command, args)
	case "fp6" : return runCommand(self, newCalculator(fpconst.FP6()), command, args)
	case "fp8" : return runCommand(self, newCalculator(fpconst.FP8()), command, args)
	default:
		panic("unvalidated variant " + self.config.Variant)
	}
}

// Converts a value to the named variant, returning the formatted
// result and its raw value.
func convertTo[T fract.Number[T]](value T, target string) (string, int64, error) {
	switch strings.ToLower(target) {
	case "fp2i": return rawPair(fract.Convert[fract.FP2I](value))
	case "fp2" : return rawPair(fract.Convert[fract.FP2](value))
	case "fp4" : return rawPair(fract.Convert[fract.FP4](value))
	case "fp6" : return rawPair(fract.Convert[fract.FP6](value))
	case "fp8" : return rawPair(fract.Convert[fract.FP8](value))
	default:
		return "", 0, usageErrorf("unknown target variant %q", target)
	}
}

func rawPair[T fract.Number[T]](value T) (string, int64, error) {
	return value.String(), value.RawInt64(), nil
}

func variantLabel[T fract.Number[T]]() string {
	var zero T
	if zero.Bits() == 32 { return fmt.Sprintf("FP%dI", zero.Precision()) }
	return fmt.Sprintf("FP%d", zero.Precision())
}

package main

import "fmt"
import "sort"
import "errors"

import "golang.org/x/text/number"

import "github.com/tinne26/fpnum/fract"
import "github.com/tinne26/fpnum/fpconst"

type calculator[T fract.Number[T]] struct {
	constants fpconst.Table[T]
	functions map[string]function[T]
}

func newCalculator[T fract.Number[T]](constants fpconst.Table[T]) *calculator[T] {
	return &calculator[T]{ constants: constants, functions: functions[T]() }
}

func runCommand[T fract.Number[T]](app *app, calc *calculator[T], command string, args []string) error {
	app.logger.Debug("running command", "command", command, "variant", variantLabel[T](), "args", args)
	switch command {
	case "info":
		return calc.info(app, args)
	case "consts":
		return calc.consts(app, args)
	case "parse":
		return calc.parse(app, args)
	case "conv":
		return calc.conv(app, args)
	case "cmp":
		return calc.cmp(app, args)
	case "eval":
		return calc.eval(app, args)
	case "funcs":
		return calc.funcs(app, args)
	default:
		return usageErrorf("unknown command %q", command)
	}
}

// Formats the value with the configured locale. Without a locale,
// the plain fract formatting is used, so the output can be parsed
// back.
func (self *calculator[T]) format(app *app, value T) string {
	if app.printer == nil { return value.String() }
	return app.printer.Sprint(number.Decimal(value.ToFloat64(), number.Scale(value.Precision())))
}

func (self *calculator[T]) argument(app *app, str string) (T, error) {
	if constant, found := self.constants.Lookup(str); found { return constant, nil }
	value, err := fract.Parse[T](str)
	if err != nil { return value, err }
	app.logger.Debug("parsed argument", "input", str, "raw", value.RawInt64())
	return value, nil
}

func (self *calculator[T]) arguments(app *app, strs []string) ([]T, error) {
	values := make([]T, 0, len(strs))
	for _, str := range strs {
		value, err := self.argument(app, str)
		if err != nil { return nil, err }
		values = append(values, value)
	}
	return values, nil
}

func (self *calculator[T]) info(app *app, args []string) error {
	if len(args) != 0 { return usageErrorf("info takes no arguments") }
	var zero T
	app.printf("%-10s %s\n", "variant", variantLabel[T]())
	app.printf("%-10s %d\n", "bits", zero.Bits())
	app.printf("%-10s %d\n", "shift", zero.Shift())
	app.printf("%-10s %d\n", "scale", zero.One().RawInt64())
	app.printf("%-10s %d\n", "precision", zero.Precision())
	app.printf("%-10s %s (raw %d)\n", "epsilon", self.format(app, zero.Epsilon()), zero.Epsilon().RawInt64())
	app.printf("%-10s %s (raw %d)\n", "min", self.format(app, zero.MinValue()), zero.MinValue().RawInt64())
	app.printf("%-10s %s (raw %d)\n", "max", self.format(app, zero.MaxValue()), zero.MaxValue().RawInt64())
	return nil
}

func (self *calculator[T]) consts(app *app, args []string) error {
	if len(args) != 0 { return usageErrorf("consts takes no arguments") }
	for _, entry := range self.constants.Entries() {
		app.printf("%-7s %s (raw %d)\n", entry.Name, self.format(app, entry.Value), entry.Value.RawInt64())
	}
	return nil
}

func (self *calculator[T]) parse(app *app, args []string) error {
	if len(args) != 1 { return usageErrorf("parse takes exactly one argument") }
	value, err := self.argument(app, args[0])
	if err != nil { return err }
	app.printf("%s (raw %d)\n", self.format(app, value), value.RawInt64())
	return nil
}

func (self *calculator[T]) conv(app *app, args []string) error {
	if len(args) != 2 { return usageErrorf("conv takes a target variant and a value") }
	value, err := self.argument(app, args[1])
	if err != nil { return err }
	converted, raw, err := convertTo(value, args[0])
	if err != nil { return err }
	app.printf("%s (raw %d) -> %s (raw %d)\n", value.String(), value.RawInt64(), converted, raw)
	return nil
}

// Compares two values using the configured tolerance, converted
// to the current variant.
func (self *calculator[T]) cmp(app *app, args []string) error {
	if len(args) != 2 { return usageErrorf("cmp takes exactly two arguments") }
	values, err := self.arguments(app, args)
	if err != nil { return err }
	tolerance := fract.Convert[T](app.config.Tolerance)
	diff := values[0].Sub(values[1]).Abs()
	switch {
	case diff.Cmp(tolerance) <= 0:
		app.printf("equal (diff %s)\n", diff)
	case values[0].Less(values[1]):
		app.printf("less (diff %s)\n", diff)
	default:
		app.printf("greater (diff %s)\n", diff)
	}
	return nil
}

func (self *calculator[T]) eval(app *app, args []string) error {
	if len(args) == 0 { return usageErrorf("eval requires a function name") }
	fn, found := self.functions[args[0]]
	if !found { return usageErrorf("unknown function %q (see 'fpcalc funcs')", args[0]) }
	if fn.arity >= 0 && len(args) - 1 != fn.arity {
		return usageErrorf("%s takes %d arguments, got %d", args[0], fn.arity, len(args) - 1)
	}

	values, err := self.arguments(app, args[1:])
	if err != nil { return err }
	result, err := fn.call(values)
	if err != nil {
		if errors.Is(err, fract.ErrEmptyInput) {
			return usageErrorf("%s requires at least one argument: %w", args[0], err)
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	app.printf("%s\n", self.format(app, result))
	app.logger.Debug("evaluated", "function", args[0], "raw", result.RawInt64())
	return nil
}

func (self *calculator[T]) funcs(app *app, args []string) error {
	if len(args) != 0 { return usageErrorf("funcs takes no arguments") }
	names := make([]string, 0, len(self.functions))
	for name := range self.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		arity := self.functions[name].arity
		if arity < 0 {
			app.printf("%s (1+ args)\n", name)
		} else {
			app.printf("%s (%d args)\n", name, arity)
		}
	}
	return nil
}

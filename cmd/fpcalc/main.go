// fpcalc is a small command line calculator to inspect the fract fixed
// point variants: their layout, constants, conversions and the results
// of the fpmath functions.
//
// Usage:
//   fpcalc [flags] <command> [args...]
//
// Commands:
//   info                     layout and limits of the variant
//   consts                   constants table of the variant
//   funcs                    functions available for eval
//   parse <value>            parses a value and shows its raw integer
//   conv <variant> <value>   converts a value to another variant
//   cmp <a> <b>              compares two values with the configured tolerance
//   eval <func> [args...]    evaluates a function (e.g. "eval atan2 1 1")
//
// Arguments can also be constant names from the table (e.g. "Pi").
package main

import "io"
import "os"
import "fmt"
import "flag"
import "errors"
import "log/slog"

import "golang.org/x/text/language"
import "golang.org/x/text/message"

type app struct {
	config  Config
	logger  *slog.Logger
	printer *message.Printer // nil when no locale is configured
	out     io.Writer
}

func (self *app) printf(format string, args ...any) {
	fmt.Fprintf(self.out, format, args...)
}

// Errors caused by bad command line usage, which make the
// program exit with code 2 instead of 1.
type usageError struct {
	err error
}

func (self *usageError) Error() string { return self.err.Error() }
func (self *usageError) Unwrap() error { return self.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{ err: fmt.Errorf(format, args...) }
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fpcalc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a TOML config file")
	variant := flags.String("variant", "", "fixed point variant: fp2i, fp2, fp4, fp6 or fp8")
	locale := flags.String("locale", "", "BCP 47 language tag for number formatting (e.g. en, de)")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: fpcalc [flags] <command> [args...]\n")
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) { return 0 }
		return 2
	}

	config := defaultConfig()
	if *configPath != "" {
		config, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "fpcalc: %v\n", err)
			return 2
		}
	}

	// flags override the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant": config.Variant = *variant
		case "locale" : config.Locale = *locale
		case "v"      : if *verbose { config.LogLevel = "debug" }
		}
	})
	err = config.validate()
	if err != nil {
		fmt.Fprintf(stderr, "fpcalc: %v\n", err)
		return 2
	}

	level, _ := config.level()
	cli := &app{
		config: config,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{ Level: level })),
		out: stdout,
	}
	if config.Locale != "" {
		tag, err := language.Parse(config.Locale)
		if err != nil {
			fmt.Fprintf(stderr, "fpcalc: invalid locale %q: %v\n", config.Locale, err)
			return 2
		}
		cli.printer = message.NewPrinter(tag)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}
	err = cli.dispatch(flags.Arg(0), flags.Args()[1:])
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "fpcalc: %v\n", err)
			return 2
		}
		cli.logger.Error("command failed", "command", flags.Arg(0), "err", err)
		return 1
	}
	return 0
}

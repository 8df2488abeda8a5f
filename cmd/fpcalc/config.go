package main

import "os"
import "fmt"
import "strings"
import "log/slog"
import "github.com/pelletier/go-toml/v2"

import "github.com/tinne26/fpnum/fract"

// Settings that can be loaded from a TOML file. Command line flags
// take precedence over the file values.
//
//   variant   = "fp4"
//   locale    = "en"
//   log_level = "debug"
//   tolerance = "0.0001"
type Config struct {
	Variant   string    `toml:"variant"`
	Locale    string    `toml:"locale"`
	LogLevel  string    `toml:"log_level"`
	Tolerance fract.FP8 `toml:"tolerance"` // used by the "cmp" command
}

func defaultConfig() Config {
	return Config{ Variant: "fp4", LogLevel: "info" }
}

// Loads the config at the given path on top of the defaults. Unknown
// keys are rejected so typos don't go unnoticed. Values are validated
// only after the command line flags are applied.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	file, err := os.Open(path)
	if err != nil { return config, err }
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&config)
	if err != nil { return config, fmt.Errorf("config %s: %w", path, err) }
	return config, nil
}

func (self *Config) validate() error {
	self.Variant = strings.ToLower(self.Variant)
	if !isVariant(self.Variant) {
		return fmt.Errorf("unknown variant %q (expected one of %s)", self.Variant, strings.Join(variantNames, ", "))
	}
	_, err := self.level()
	return err
}

func (self *Config) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(self.LogLevel))
	if err != nil { return level, fmt.Errorf("invalid log_level %q: %w", self.LogLevel, err) }
	return level, nil
}

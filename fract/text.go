package fract

import "fmt"
import "errors"
import "strconv"
import "strings"

// Returns the value formatted with exactly [Value.Precision]() decimals
// (e.g.: "1.0000" for an FP4 one).
func (self Value[R, F]) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', self.Precision(), 64)
}

// Parses a value from any string accepted by [strconv.ParseFloat],
// and converts it with [Value.FromFloat64](). Leading and trailing
// spaces are ignored. Literals beyond the float64 range are not an
// error: like any other out of range input, the raw result is
// undefined. On failure, the returned error wraps both [ErrFormat]
// and the underlying [*strconv.NumError].
func (self Value[R, F]) Parse(str string) (Value[R, F], error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value[R, F]{}, fmt.Errorf("%w %q: %w", ErrFormat, str, err)
	}
	return self.FromFloat64(value), nil
}

// Implements [encoding.TextMarshaler].
func (self Value[R, F]) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}

// Implements [encoding.TextUnmarshaler].
func (self *Value[R, F]) UnmarshalText(text []byte) error {
	value, err := self.Parse(string(text))
	if err != nil { return err }
	*self = value
	return nil
}

package fract

import "testing"
import "errors"
import "strconv"
import "encoding/json"

func TestString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{fp4.One().String(), "1.0000"},
		{fp2.FromFloat64(3.14159).String(), "3.14"},
		{fp2i.FromFloat64(-1.5).String(), "-1.50"},
		{fp6.FromInt(-12).String(), "-12.000000"},
		{fp8.FromFloat64(3.141592653589793).String(), "3.14159265"},
		{fp4.Zero().String(), "0.0000"},
	}

	for i, test := range tests {
		if test.in != test.out {
			t.Fatalf("test #%d: expected %q, got %q", i, test.out, test.in)
		}
	}
}

func TestParse(t *testing.T) {
	value, err := fp4.Parse(" 2.5 ")
	if err != nil || value.Raw() != 40960 {
		t.Fatalf("expected 2.5 to parse to raw 40960, got %d (%v)", value.Raw(), err)
	}
	value, err = Parse[FP4]("-1e2")
	if err != nil || value.ToFloat64() != -100 {
		t.Fatalf("expected -1e2 to parse to -100, got %s (%v)", value, err)
	}

	// beyond float64 range: accepted, with an undefined raw value
	for _, str := range []string{"1e400", "-1e400"} {
		_, err := Parse[FP4](str)
		if err != nil {
			t.Fatalf("expected %q to be accepted, got %v", str, err)
		}
	}
	tiny, err := Parse[FP8]("1e-400")
	if err != nil || !tiny.IsZero() {
		t.Fatalf("expected 1e-400 to parse to zero, got %s (%v)", tiny, err)
	}

	for _, str := range []string{"", "abc", "1.2.3", "0x", "--1"} {
		_, err := Parse[FP2](str)
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("expected %q to fail with ErrFormat, got %v", str, err)
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Fatalf("expected %q error to wrap a *strconv.NumError", str)
		}
	}

	if MustParse[FP6]("0.125").ToFloat64() != 0.125 {
		t.Fatalf("unexpected MustParse() result")
	}
	func() {
		defer func() {
			if recover() == nil { t.Fatalf("expected MustParse() to panic") }
		}()
		MustParse[FP6]("one")
	}()
}

func TestTextMarshaling(t *testing.T) {
	type config struct {
		Tolerance FP4  `json:"tolerance"`
		Offset    FP2I `json:"offset"`
	}

	data, err := json.Marshal(config{ Tolerance: fp4.FromFloat64(1.5), Offset: fp2i.FromInt(-3) })
	if err != nil { t.Fatal(err) }
	if string(data) != `{"tolerance":"1.5000","offset":"-3.00"}` {
		t.Fatalf("unexpected json output %s", data)
	}

	var decoded config
	err = json.Unmarshal([]byte(`{"tolerance":"0.25","offset":"7"}`), &decoded)
	if err != nil { t.Fatal(err) }
	if decoded.Tolerance.ToFloat64() != 0.25 || decoded.Offset.ToInt() != 7 {
		t.Fatalf("unexpected decoded values %s and %s", decoded.Tolerance, decoded.Offset)
	}

	err = json.Unmarshal([]byte(`{"tolerance":"x"}`), &decoded)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

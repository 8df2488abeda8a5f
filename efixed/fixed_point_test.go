package efixed

import "testing"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fpnum/fract"

func TestToInt26_6(t *testing.T) {
	tests := []struct {
		in  float64
		out fixed.Int26_6
	}{
		{in: 0.0, out: 0}, {in: 1.0, out: 64}, {in: -1.0, out: -64},
		{in: 0.5, out: 32}, {in: 3.14, out: 201}, {in: -3.14, out: -201},
		{in: 8.33, out: 533},
		{in: 8.3359375, out: 534}, {in: -8.3359375, out: -534}, // ties away from zero
		{in: 33554431.984375, out: 0x7FFFFFFF},
	}

	for i, test := range tests {
		got := ToInt26_6(fract.New[fract.FP8](test.in))
		if got != test.out {
			str := "test #%d: in (%.6f) expected %d (%s), but got %d (%s)"
			t.Fatalf(str, i, test.in, test.out, test.out, got, got)
		}
	}

	// FP2I values are always exact in 26.6
	for _, raw := range []int32{0, 2, -2, 128, -256, 0x7FFFFE} {
		value := fract.FP2I{}.FromRaw(raw)
		if ToInt26_6(value) != fixed.Int26_6(raw/2) {
			t.Fatalf("FP2I raw %d expected to map exactly to Int26_6 %d", raw, raw/2)
		}
	}
}

func TestFromFixed(t *testing.T) {
	if FromInt26_6[fract.FP4](fixed.I(3)).ToFloat64() != 3 {
		t.Fatalf("expected fixed.I(3) to convert to 3")
	}
	if FromInt26_6[fract.FP2I](96).ToFloat64() != 1.5 {
		t.Fatalf("expected Int26_6(96) to convert to 1.5")
	}
	if FromInt52_12[fract.FP6](fixed.Int52_12(-6144)).ToFloat64() != -1.5 {
		t.Fatalf("expected Int52_12(-6144) to convert to -1.5")
	}
	if ToInt52_12(fract.New[fract.FP8](-1.5)) != -6144 {
		t.Fatalf("expected -1.5 to convert to Int52_12(-6144)")
	}

	value := fract.New[fract.FP6](12.625)
	if FromInt26_6[fract.FP6](ToInt26_6(value)) != value {
		t.Fatalf("expected exact round trip for %s", value)
	}
	if FromInt52_12[fract.FP6](ToInt52_12(value)) != value {
		t.Fatalf("expected exact round trip for %s", value)
	}
}

func TestPointsAndRects(t *testing.T) {
	x, y := fract.New[fract.FP4](1.5), fract.New[fract.FP4](-2)
	point := ToPoint26_6(x, y)
	if point != fixed.P(0, -2).Add(fixed.Point26_6{ X: 96 }) {
		t.Fatalf("unexpected point %v", point)
	}
	bx, by := FromPoint26_6[fract.FP4](point)
	if bx != x || by != y {
		t.Fatalf("unexpected point round trip (%s, %s)", bx, by)
	}

	rect := ToRectangle26_6(y, y, x, x)
	if rect.Min.X != -128 || rect.Max.Y != 96 || rect.Empty() {
		t.Fatalf("unexpected rectangle %v", rect)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	for _, value := range []float64{ 33554432, -33554432.5, 1e12 } {
		func() {
			defer func(){ _ = recover() }()
			ToInt26_6(fract.New[fract.FP2](value))
			t.Fatalf("expected %f to panic", value)
		}()
	}

	// 2^51 is the first value out of the Int52_12 range
	func() {
		defer func(){ _ = recover() }()
		ToInt52_12(fract.FP2{}.FromInt64(1 << 51))
		t.Fatalf("expected 2^51 to panic")
	}()
	if ToInt52_12(fract.FP2{}.FromInt64(-1 << 51)) != fixed.Int52_12(-1 << 63) {
		t.Fatalf("expected -2^51 to map to the smallest Int52_12")
	}
}

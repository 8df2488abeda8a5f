package fract

import "testing"
import "errors"
import "math/rand"

func TestAddSub(t *testing.T) {
	one := fp4.One()
	if one.Add(one) != fp4.FromFloat64(2.0) {
		t.Fatalf("expected 1 + 1 == 2, got %s", one.Add(one))
	}
	if one.Sub(one.Add(one)) != fp4.NegOne() {
		t.Fatalf("expected 1 - 2 == -1")
	}
	if fp2i.MaxValue().Add(fp2i.Epsilon()) != fp2i.MinValue() {
		t.Fatalf("expected FP2I max + epsilon to wrap to min")
	}
	if fp8.MinValue().Sub(fp8.Epsilon()) != fp8.MaxValue() {
		t.Fatalf("expected FP8 min - epsilon to wrap to max")
	}

	rng := rand.New(rand.NewSource(0xADD))
	for i := 0; i < 500; i++ {
		a, b := fp6.FromRaw(int64(rng.Uint64())), fp6.FromRaw(int64(rng.Uint64()))
		if a.Add(b).Sub(b) != a {
			t.Fatalf("(a + b) - b != a for raws %d and %d", a.Raw(), b.Raw())
		}
		c, d := fp2i.FromRaw(int32(rng.Uint32())), fp2i.FromRaw(int32(rng.Uint32()))
		if c.Add(d).Sub(d) != c {
			t.Fatalf("(c + d) - d != c for raws %d and %d", c.Raw(), d.Raw())
		}
	}
}

func TestIncDecNeg(t *testing.T) {
	value := fp6.FromFloat64(1.25)
	if value.Inc().ToFloat64() != 2.25 || value.Dec().ToFloat64() != 0.25 {
		t.Fatalf("unexpected Inc()/Dec() results %s and %s", value.Inc(), value.Dec())
	}
	if value.Neg().ToFloat64() != -1.25 || value.Neg().Abs() != value {
		t.Fatalf("unexpected Neg()/Abs() results")
	}
	if fp4.MinValue().Neg() != fp4.MinValue() || fp4.MinValue().Abs() != fp4.MinValue() {
		t.Fatalf("expected MinValue() negation to wrap")
	}
	if fp2i.MinValue().Neg() != fp2i.MinValue() {
		t.Fatalf("expected FP2I MinValue() negation to wrap")
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b float64
		raw  int64
	}{
		{1.5, 2.25, 55296}, {-1.5, 2.25, -55296}, {-1.5, -2.25, 55296},
		{0, 123.5, 0}, {1, 7.75, 126976},
	}
	for i, test := range tests {
		got := fp4.FromFloat64(test.a).Mul(fp4.FromFloat64(test.b))
		if got.Raw() != test.raw {
			str := "test #%d: %f * %f expected raw %d, got %d (%s)"
			t.Fatalf(str, i, test.a, test.b, test.raw, got.Raw(), got)
		}
	}

	// truncation goes toward negative infinity, like the arithmetic shift
	eps := fp4.Epsilon()
	if eps.Mul(eps).Raw() != 0 || eps.Neg().Mul(eps).Raw() != -1 {
		t.Fatalf("unexpected epsilon products %d and %d", eps.Mul(eps).Raw(), eps.Neg().Mul(eps).Raw())
	}

	// 64-bit products overflow before the shift
	big := fp8.FromRaw(1 << 40)
	if big.Mul(big).Raw() != 0 {
		t.Fatalf("expected 2^80 product to wrap to 0, got %d", big.Mul(big).Raw())
	}

	// 32-bit products are computed on 64 bits but truncated back
	if fp2i.MaxValue().Mul(fp2i.FromInt(2)).Raw() != -2 {
		t.Fatalf("expected FP2I max * 2 to truncate to raw -2, got %d", fp2i.MaxValue().Mul(fp2i.FromInt(2)).Raw())
	}

	rng := rand.New(rand.NewSource(0x3A1))
	for i := 0; i < 500; i++ {
		a := fp4.FromRaw(rng.Int63n(1 << 48) - (1 << 47))
		if a.Mul(a.One()) != a {
			t.Fatalf("a * 1 != a for raw %d", a.Raw())
		}
	}
}

func TestDiv(t *testing.T) {
	one, three := fp4.One(), fp4.FromInt(3)
	if one.Div(three).Raw() != 5461 || one.Neg().Div(three).Raw() != -5461 {
		t.Fatalf("unexpected 1/3 results %d and %d", one.Div(three).Raw(), one.Neg().Div(three).Raw())
	}
	if fp2i.FromInt(7).Div(fp2i.FromInt(2)).ToFloat64() != 3.5 {
		t.Fatalf("expected FP2I 7/2 == 3.5")
	}

	rng := rand.New(rand.NewSource(0xD1F))
	for i := 0; i < 500; i++ {
		a := fp6.FromFloat64((rng.Float64() - 0.5)*2000)
		b := fp6.FromFloat64(0.5 + rng.Float64()*99.5)
		if rng.Intn(2) == 0 { b = b.Neg() }
		back := a.Div(b).Mul(b)
		tolerance := (b.Abs().ToFloat64() + 2)/OneDigits6
		if diff := back.Sub(a).Abs().ToFloat64(); diff > tolerance {
			t.Fatalf("(%s / %s) * %s = %s, off by %g", a, b, b, back, diff)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	expectDivideByZero(t, "FP2 Div", func() { fp2.FromFloat64(1.0).Div(fp2.FromFloat64(0.0)) })
	expectDivideByZero(t, "FP2I Div", func() { fp2i.One().Div(fp2i.Zero()) })
	expectDivideByZero(t, "FP8 Mod", func() { fp8.One().Mod(fp8.Zero()) })

	_, err := fp4.One().TryDiv(fp4.Zero())
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected TryDiv() to return ErrDivideByZero, got %v", err)
	}
	_, err = fp4.One().TryMod(fp4.FromFloat64(0.00001))
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected TryMod() with a zero raw divisor to return ErrDivideByZero, got %v", err)
	}
	quotient, err := fp4.One().TryDiv(fp4.FromInt(4))
	if err != nil || quotient.ToFloat64() != 0.25 {
		t.Fatalf("expected TryDiv(4) == 0.25, got %s (%v)", quotient, err)
	}
}

func expectDivideByZero(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		recovered := recover()
		err, isErr := recovered.(error)
		if !isErr || !errors.Is(err, ErrDivideByZero) {
			t.Fatalf("%s: expected ErrDivideByZero panic, got %v", name, recovered)
		}
	}()
	fn()
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, b, out float64
	}{
		{5.5, 2, 1.5}, {-5.5, 2, -1.5}, {5.5, -2, 1.5}, {4, 2, 0}, {0.75, 0.5, 0.25},
	}
	for i, test := range tests {
		got := fp4.FromFloat64(test.a).Mod(fp4.FromFloat64(test.b))
		if got.ToFloat64() != test.out {
			t.Fatalf("test #%d: %f mod %f expected %f, got %s", i, test.a, test.b, test.out, got)
		}
	}
}

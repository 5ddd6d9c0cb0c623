package binon

import (
	"bytes"
	"math"
	"testing"
)

func TestCanExactFloat32(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"negative zero", math.Copysign(0, -1), true},
		{"one half", 0.5, true},
		{"one third", 1.0 / 3.0, false},
		{"pi", math.Pi, false},
		{"nan", math.NaN(), false},
		{"large exact power of two", 1 << 40, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := canExactFloat32(c.v); got != c.want {
				t.Fatalf("canExactFloat32(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestFloatBitsEqualDistinguishesSignedZero(t *testing.T) {
	if floatBitsEqual(0, math.Copysign(0, -1)) {
		t.Fatal("floatBitsEqual(0, -0) = true, want false (spec.md §8)")
	}
	if !floatBitsEqual(0, 0) {
		t.Fatal("floatBitsEqual(0, 0) = false, want true")
	}
}

func TestFloatBitsEqualNaNEqualsItself(t *testing.T) {
	n := math.NaN()
	if !floatBitsEqual(n, n) {
		t.Fatal("floatBitsEqual(NaN, NaN) = false, want true under bit-pattern equality")
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		var buf bytes.Buffer
		if err := writeFloat64(&buf, f); err != nil {
			t.Fatalf("writeFloat64: %v", err)
		}
		if buf.Len() != 8 {
			t.Fatalf("encoded length = %d, want 8", buf.Len())
		}
		got, err := readFloat64(&buf)
		if err != nil {
			t.Fatalf("readFloat64: %v", err)
		}
		if !floatBitsEqual(got, f) {
			t.Fatalf("round trip = %v, want %v", got, f)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 3.14} {
		var buf bytes.Buffer
		if err := writeFloat32(&buf, f); err != nil {
			t.Fatalf("writeFloat32: %v", err)
		}
		if buf.Len() != 4 {
			t.Fatalf("encoded length = %d, want 4", buf.Len())
		}
		got, err := readFloat32(&buf)
		if err != nil {
			t.Fatalf("readFloat32: %v", err)
		}
		if got != f {
			t.Fatalf("round trip = %v, want %v", got, f)
		}
	}
}

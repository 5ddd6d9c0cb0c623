package binon

import (
	"math"
	"math/big"
	"testing"
)

func TestIsDefault(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), true},
		{"false", Bool(false), true},
		{"true", Bool(true), false},
		{"zero int", Int(0), true},
		{"one", Int(1), false},
		{"zero float", Float(0), true},
		{"neg zero float", Float(math.Copysign(0, -1)), false},
		{"empty buffer", Buffer(nil), true},
		{"nonempty buffer", Buffer([]byte{1}), false},
		{"empty str", Str(""), true},
		{"nonempty str", Str("x"), false},
		{"empty list", List(), true},
		{"nonempty list", List(Int(1)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.IsDefault(); got != c.want {
				t.Fatalf("IsDefault() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEqualDistinguishesZeroAndNegZero(t *testing.T) {
	if Float(0).Equal(Float(math.Copysign(0, -1))) {
		t.Fatal("0.0 must not equal -0.0 under Value.Equal (spec.md §8)")
	}
}

func TestEqualNaN(t *testing.T) {
	if !Float(math.NaN()).Equal(Float(math.NaN())) {
		t.Fatal("NaN must equal itself under Value.Equal's bit-pattern semantics")
	}
}

func TestEqualBigInt(t *testing.T) {
	a := BigInt(new(big.Int).Lsh(big.NewInt(1), 100))
	b := BigInt(new(big.Int).Lsh(big.NewInt(1), 100))
	if !a.Equal(b) {
		t.Fatal("equal big ints should compare equal")
	}
}

func TestEqualList(t *testing.T) {
	a := List(Int(1), Str("x"))
	b := List(Int(1), Str("x"))
	c := List(Int(1), Str("y"))
	if !a.Equal(b) {
		t.Fatal("identical lists should be equal")
	}
	if a.Equal(c) {
		t.Fatal("differing lists should not be equal")
	}
}

func TestEqualDictOrderSensitive(t *testing.T) {
	a, _ := NewDict(DictEntry{Key: Str("a"), Value: Int(1)}, DictEntry{Key: Str("b"), Value: Int(2)})
	b, _ := NewDict(DictEntry{Key: Str("a"), Value: Int(1)}, DictEntry{Key: Str("b"), Value: Int(2)})
	if !a.Equal(b) {
		t.Fatal("identically ordered dicts with equal entries should be equal")
	}
	c, _ := NewDict(DictEntry{Key: Str("b"), Value: Int(2)}, DictEntry{Key: Str("a"), Value: Int(1)})
	if a.Equal(c) {
		t.Fatal("dicts with the same entries in a different order should not be equal")
	}
}

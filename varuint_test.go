package binon

import (
	"bytes"
	"math/big"
	"testing"
)

func TestVarUintBandBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		v       int64
		wantLen int
	}{
		{"1-byte min", 0, 1},
		{"1-byte max", vu1Max - 1, 1},
		{"2-byte min", vu1Max, 2},
		{"2-byte max", vu2Max - 1, 2},
		{"4-byte min", vu2Max, 4},
		{"4-byte max", vu4Max - 1, 4},
		{"8-byte min", vu4Max, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := big.NewInt(c.v)
			var buf bytes.Buffer
			if err := writeVarUint(&buf, n); err != nil {
				t.Fatalf("writeVarUint: %v", err)
			}
			if buf.Len() != c.wantLen {
				t.Fatalf("encoded length = %d, want %d", buf.Len(), c.wantLen)
			}
			if got := varUintLen(n); got != c.wantLen {
				t.Fatalf("varUintLen = %d, want %d", got, c.wantLen)
			}
			got, err := readVarUint(&buf)
			if err != nil {
				t.Fatalf("readVarUint: %v", err)
			}
			if got.Cmp(n) != 0 {
				t.Fatalf("round trip = %v, want %v", got, n)
			}
		})
	}
}

func TestVarUintZero(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVarUint(&buf, big.NewInt(0)); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[0] != 0x00 {
		t.Fatalf("encode(0) = %x, want 0x00", buf.Bytes())
	}
}

func TestVarUintNegativeRejected(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVarUint(&buf, big.NewInt(-1)); err == nil {
		t.Fatal("expected error encoding a negative VarUInt")
	}
}

func TestVarUintBigEscape(t *testing.T) {
	// 2^70, far past the 64-bit 9-byte band: must round-trip via the escape
	// form (spec.md §4.3 row 6 / §9's recursive extension).
	n := new(big.Int).Lsh(big.NewInt(1), 70)
	var buf bytes.Buffer
	if err := writeVarUint(&buf, n); err != nil {
		t.Fatalf("writeVarUint: %v", err)
	}
	if buf.Bytes()[0] != 0xF1 {
		t.Fatalf("escape prefix = %x, want 0xf1", buf.Bytes()[0])
	}
	got, err := readVarUint(&buf)
	if err != nil {
		t.Fatalf("readVarUint: %v", err)
	}
	if got.Cmp(n) != 0 {
		t.Fatalf("round trip = %v, want %v", got, n)
	}
}

func TestVarUintUnrecognizedPrefix(t *testing.T) {
	// 0xF2..0xFF are not assigned; spec.md §4.3 reserves only 0xF0/0xF1.
	_, err := readVarUint(bytes.NewReader([]byte{0xFF}))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

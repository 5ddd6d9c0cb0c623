package binon

import (
	"bytes"
	"testing"
)

func TestBufferRoundTrip(t *testing.T) {
	cases := [][]byte{nil, {}, {0x00}, bytes.Repeat([]byte{0xAB}, 1000)}
	for _, b := range cases {
		var buf bytes.Buffer
		if err := writeBuffer(&buf, b); err != nil {
			t.Fatalf("writeBuffer: %v", err)
		}
		got, err := readBuffer(&buf)
		if err != nil {
			t.Fatalf("readBuffer: %v", err)
		}
		if !bytes.Equal(got, b) {
			t.Fatalf("round trip = %x, want %x", got, b)
		}
	}
}

func TestStrRoundTrip(t *testing.T) {
	cases := []string{"", "A", "héllo wörld", "日本語"}
	for _, s := range cases {
		var buf bytes.Buffer
		if err := writeStr(&buf, s); err != nil {
			t.Fatalf("writeStr: %v", err)
		}
		got, err := readStr(&buf)
		if err != nil {
			t.Fatalf("readStr: %v", err)
		}
		if got != s {
			t.Fatalf("round trip = %q, want %q", got, s)
		}
	}
}

func TestStrRejectsIllFormedUTF8(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBuffer(&buf, []byte{0xFF, 0xFE}); err != nil {
		t.Fatal(err)
	}
	if _, err := readStr(&buf); err == nil {
		t.Fatal("expected ParseError decoding ill-formed UTF-8 as Str")
	}
}

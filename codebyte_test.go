package binon

import (
	"bytes"
	"errors"
	"testing"
)

func TestCodeByteRoundTrip(t *testing.T) {
	cases := []struct {
		base baseType
		sub  byte
	}{
		{baseNull, subDefault},
		{baseBool, subBoolTrue},
		{baseInt, subIntUInt},
		{baseDict, subDictSDict},
	}
	for _, c := range cases {
		cb := newCodeByte(c.base, c.sub)
		if cb.base() != c.base {
			t.Fatalf("base() = %v, want %v", cb.base(), c.base)
		}
		if cb.sub() != c.sub {
			t.Fatalf("sub() = %v, want %v", cb.sub(), c.sub)
		}

		var buf bytes.Buffer
		if err := cb.write(&buf); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := readCodeByte(&buf)
		if err != nil {
			t.Fatalf("readCodeByte: %v", err)
		}
		if got != cb {
			t.Fatalf("round trip mismatch: got %v want %v", got, cb)
		}
	}
}

func TestReadCodeByteShort(t *testing.T) {
	_, err := readCodeByte(bytes.NewReader(nil))
	var eof *EndOfFileError
	if err == nil {
		t.Fatal("expected error on empty reader")
	}
	if !errors.As(err, &eof) {
		t.Fatalf("expected *EndOfFileError, got %T: %v", err, err)
	}
}

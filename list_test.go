package binon

import (
	"bytes"
	"testing"
)

func TestGListRoundTrip(t *testing.T) {
	opts := newCodecOptions(Options{})
	elems := []Value{Int(1), Str("two"), Bool(true), Null()}
	var buf bytes.Buffer
	if err := writeGList(&buf, elems, opts); err != nil {
		t.Fatalf("writeGList: %v", err)
	}
	got, err := readGList(&buf, opts)
	if err != nil {
		t.Fatalf("readGList: %v", err)
	}
	if len(got) != len(elems) {
		t.Fatalf("len = %d, want %d", len(got), len(elems))
	}
	for i := range elems {
		if !got[i].Equal(elems[i]) {
			t.Fatalf("elem %d = %+v, want %+v", i, got[i], elems[i])
		}
	}
}

func TestSListIntRoundTrip(t *testing.T) {
	opts := newCodecOptions(Options{})
	elems := []Value{Int(1), Int(-2), Int(3000)}
	var buf bytes.Buffer
	if err := writeSList(&buf, elems, KindInt, opts); err != nil {
		t.Fatalf("writeSList: %v", err)
	}
	got, err := readSList(&buf, opts)
	if err != nil {
		t.Fatalf("readSList: %v", err)
	}
	for i := range elems {
		if !got[i].Equal(elems[i]) {
			t.Fatalf("elem %d = %+v, want %+v", i, got[i], elems[i])
		}
	}
}

func TestSListBoolBitPacking(t *testing.T) {
	opts := newCodecOptions(Options{})
	// 10 bools forces the packed form into 2 bytes (ceil(10/8)) with the
	// trailing 6 bits zero-padded.
	elems := []Value{
		Bool(true), Bool(false), Bool(true), Bool(true), Bool(false),
		Bool(false), Bool(true), Bool(false), Bool(true), Bool(true),
	}
	var buf bytes.Buffer
	if err := writeSList(&buf, elems, KindBool, opts); err != nil {
		t.Fatalf("writeSList: %v", err)
	}
	raw := buf.Bytes()
	// VarUInt count (1 byte: 10) + tag (1 byte) + ceil(10/8)=2 packed bytes.
	if len(raw) != 1+1+2 {
		t.Fatalf("encoded length = %d, want 4", len(raw))
	}
	got, err := readSList(bytes.NewReader(raw), opts)
	if err != nil {
		t.Fatalf("readSList: %v", err)
	}
	if len(got) != len(elems) {
		t.Fatalf("len = %d, want %d", len(got), len(elems))
	}
	for i := range elems {
		if got[i].IsBool() != elems[i].IsBool() {
			t.Fatalf("elem %d = %v, want %v", i, got[i].IsBool(), elems[i].IsBool())
		}
	}
}

func TestListSpecializationRequiresHomogeneity(t *testing.T) {
	if _, ok := listSpecialization(nil); ok {
		t.Fatal("empty list should not specialize")
	}
	if _, ok := listSpecialization([]Value{Int(1), Str("x")}); ok {
		t.Fatal("mixed-kind list should not specialize")
	}
	kind, ok := listSpecialization([]Value{Int(1), Int(2)})
	if !ok || kind != KindInt {
		t.Fatalf("homogeneous int list: ok=%v kind=%v", ok, kind)
	}
}

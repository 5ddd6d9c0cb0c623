package binon

import (
	"bytes"
	"testing"
)

func TestGDictPayloadRoundTrip(t *testing.T) {
	opts := newCodecOptions(Options{})
	entries := []DictEntry{
		{Key: Str("a"), Value: Int(1)},
		{Key: Int(2), Value: Str("b")},
	}
	var buf bytes.Buffer
	if err := writeGDictPayload(&buf, entries, opts); err != nil {
		t.Fatalf("writeGDictPayload: %v", err)
	}
	got, err := readGDictPayload(&buf, opts)
	if err != nil {
		t.Fatalf("readGDictPayload: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("len = %d, want %d", len(got), len(entries))
	}
	for i := range entries {
		if !got[i].Key.Equal(entries[i].Key) || !got[i].Value.Equal(entries[i].Value) {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestSKDictRoundTrip(t *testing.T) {
	opts := newCodecOptions(Options{})
	entries := []DictEntry{
		{Key: Str("a"), Value: Int(1)},
		{Key: Str("b"), Value: List(Int(1), Int(2))},
	}
	var buf bytes.Buffer
	if err := writeSKDict(&buf, entries, KindStr, opts); err != nil {
		t.Fatalf("writeSKDict: %v", err)
	}
	got, err := readSKDict(&buf, opts)
	if err != nil {
		t.Fatalf("readSKDict: %v", err)
	}
	for i := range entries {
		if !got[i].Key.Equal(entries[i].Key) || !got[i].Value.Equal(entries[i].Value) {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestSDictRoundTrip(t *testing.T) {
	opts := newCodecOptions(Options{})
	entries := []DictEntry{
		{Key: Str("a"), Value: Int(1)},
		{Key: Str("b"), Value: Int(2)},
	}
	var buf bytes.Buffer
	if err := writeSDict(&buf, entries, KindStr, KindInt, opts); err != nil {
		t.Fatalf("writeSDict: %v", err)
	}
	got, err := readSDict(&buf, opts)
	if err != nil {
		t.Fatalf("readSDict: %v", err)
	}
	for i := range entries {
		if !got[i].Key.Equal(entries[i].Key) || !got[i].Value.Equal(entries[i].Value) {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestDictSpecializationDetectsSharedKinds(t *testing.T) {
	keyKind, valKind, sameKey, sameVal := dictSpecialization([]DictEntry{
		{Key: Str("a"), Value: Int(1)},
		{Key: Str("b"), Value: Int(2)},
	})
	if !sameKey || !sameVal || keyKind != KindStr || valKind != KindInt {
		t.Fatalf("sameKey=%v sameVal=%v keyKind=%v valKind=%v", sameKey, sameVal, keyKind, valKind)
	}

	_, _, sameKey, sameVal = dictSpecialization([]DictEntry{
		{Key: Str("a"), Value: Int(1)},
		{Key: Int(2), Value: Str("b")},
	})
	if sameKey || sameVal {
		t.Fatal("mixed key/value kinds must not be reported as specializable")
	}
}

func TestNewDictRejectsDuplicateKeys(t *testing.T) {
	_, err := NewDict(
		DictEntry{Key: Str("a"), Value: Int(1)},
		DictEntry{Key: Str("a"), Value: Int(2)},
	)
	if err == nil {
		t.Fatal("expected error constructing a dict with duplicate keys")
	}
}

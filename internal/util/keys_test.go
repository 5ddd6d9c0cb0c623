package util

import "testing"

func TestContentHashDeterministic(t *testing.T) {
	b := []byte("a binon-encoded payload")
	if ContentHash(b) != ContentHash(b) {
		t.Fatal("ContentHash must be deterministic for identical input")
	}
}

func TestContentHashDistinguishesInputs(t *testing.T) {
	if ContentHash([]byte("a")) == ContentHash([]byte("b")) {
		t.Fatal("distinct inputs produced the same hash")
	}
}

func TestContentHashLengthPrefixAvoidsDegenerateCollision(t *testing.T) {
	// Without a length prefix, "" and a string of the hash's internal
	// block-padding byte could coincide; guard the prefix's intended effect.
	if ContentHash(nil) == ContentHash([]byte{0}) {
		t.Fatal("empty input and a single zero byte must not collide")
	}
}

func TestContentHashLength(t *testing.T) {
	h := ContentHash([]byte("x"))
	if len(h) != 16 {
		t.Fatalf("len(ContentHash(...)) = %d, want 16", len(h))
	}
}

func TestFastHashDeterministic(t *testing.T) {
	b := []byte("another payload")
	if FastHash(b) != FastHash(b) {
		t.Fatal("FastHash must be deterministic for identical input")
	}
}

func TestFastHashDistinguishesInputs(t *testing.T) {
	if FastHash([]byte("a")) == FastHash([]byte("b")) {
		t.Fatal("distinct inputs produced the same hash")
	}
}

func TestFastHashAndContentHashDiffer(t *testing.T) {
	b := []byte("shared input")
	if FastHash(b) == ContentHash(b) {
		t.Fatal("FastHash and ContentHash use unrelated algorithms and should not coincide")
	}
}

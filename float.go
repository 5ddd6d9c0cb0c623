package binon

import (
	"encoding/binary"
	"io"
	"math"
)

// mathSignbit and floatBitsEqual give Value the bit-level float semantics
// spec.md §8 requires for decode(encode(v)) == v: -0.0 is distinct from 0.0,
// and NaN compares equal to itself (unlike Go's ==).
func mathSignbit(f float64) bool { return math.Signbit(f) }

func floatBitsEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

// canExactFloat32 is the Float32 precision test (spec.md §4.5): a value may
// only take the specialized 4-byte form if narrowing to binary32 and back
// loses nothing. NaN is conservatively kept in 8-byte form since its payload
// bits are not preserved by the narrow/widen round trip.
func canExactFloat32(f float64) bool {
	if math.IsNaN(f) {
		return false
	}
	f32 := float32(f)
	return float64(f32) == f
}

func writeFloat64(w io.Writer, f float64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	return mustWrite(w, b[:])
}

func readFloat64(r io.Reader) (float64, error) {
	b, err := mustRead(r, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func writeFloat32(w io.Writer, f float32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
	return mustWrite(w, b[:])
}

func readFloat32(r io.Reader) (float32, error) {
	b, err := mustRead(r, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

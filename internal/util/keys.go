package util

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ContentHash derives a fixed-size cache key from an encoded BinON value's
// raw bytes, for use as a decode-memoization key (memoize.Decoder). The
// length prefix guards against the empty-input/all-zero degenerate case
// colliding with a legitimately short encoding.
func ContentHash(b []byte) string {
	var lenPrefix [8]byte
	binary.BigEndian.PutUint64(lenPrefix[:], uint64(len(b)))

	h := sha256.New()
	h.Write(lenPrefix[:])
	h.Write(b)
	sum := h.Sum(nil)
	return hex16(sum)
}

// FastHash is a cheap, non-cryptographic alternative to ContentHash for
// in-process caches (memoize/ristretto) where keys never leave the process
// and collision resistance against an adversary is not a concern.
func FastHash(b []byte) string {
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}

func hex16(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 16)
	for i := 0; i < 8; i++ {
		v := b[i]
		out[i*2] = hexdigits[v>>4]
		out[i*2+1] = hexdigits[v&0x0f]
	}
	return string(out)
}

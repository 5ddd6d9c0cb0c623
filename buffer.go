package binon

import (
	"io"
	"math/big"
	"unicode/utf8"
)

// Buffer and Str share a wire shape (spec.md §4.6): a VarUInt byte-length
// prefix followed by that many raw bytes. Str additionally requires the
// bytes to be well-formed UTF-8.

func writeBuffer(w io.Writer, b []byte) error {
	if err := writeVarUint(w, big.NewInt(int64(len(b)))); err != nil {
		return err
	}
	return mustWrite(w, b)
}

func readBuffer(r io.Reader) ([]byte, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "buffer: length too large"}
	}
	return mustRead(r, int(n.Int64()))
}

func writeStr(w io.Writer, s string) error {
	return writeBuffer(w, []byte(s))
}

func readStr(r io.Reader) (string, error) {
	raw, err := readBuffer(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &ParseError{Offset: -1, Reason: "str: ill-formed UTF-8"}
	}
	return string(raw), nil
}

func bufferLen(b []byte) int {
	return varUintLen(big.NewInt(int64(len(b)))) + len(b)
}

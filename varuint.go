package binon

import (
	"encoding/binary"
	"io"
	"math/big"
)

// VarUInt is the unary-prefix variable-length unsigned integer codec,
// spec.md §4.3. It backs every length prefix (buffer/str/list/dict) and the
// UInt-specialized Int payload.
//
// Framing (unary prefix of leading 1-bits in the first byte, big-endian):
//
//	0xxxxxxx                              1 byte,  7 payload bits
//	10xxxxxx xxxxxxxx                     2 bytes, 14 payload bits
//	110xxxxx xxxxxxxx*3                   4 bytes, 29 payload bits
//	1110xxxx xxxxxxxx*7                   8 bytes, 60 payload bits
//	11110000 + 8 bytes                    9 bytes, 64 payload bits
//	11110001 + VarUInt(n-9) + n bytes      escape, arbitrary precision
//
// Writers choose the narrowest framing whose payload fits; readers dispatch
// on the prefix bits of the first byte.
const (
	vu1Max = 1 << 7
	vu2Max = 1 << 14
	vu4Max = 1 << 29
	vu8Max = 1 << 60
)

func writeVarUint(w io.Writer, n *big.Int) error {
	if n.Sign() < 0 {
		return &TypeError{Kind: "VarUInt: negative value"}
	}
	if n.IsUint64() {
		v := n.Uint64()
		switch {
		case v < vu1Max:
			return mustWriteByte(w, byte(v))
		case v < vu2Max:
			var b [2]byte
			binary.BigEndian.PutUint16(b[:], 0x8000|uint16(v))
			return mustWrite(w, b[:])
		case v < vu4Max:
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], 0xC0000000|uint32(v))
			return mustWrite(w, b[:])
		case v < vu8Max:
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], 0xE000000000000000|v)
			return mustWrite(w, b[:])
		default:
			var b [9]byte
			b[0] = 0xF0
			binary.BigEndian.PutUint64(b[1:], v)
			return mustWrite(w, b[:])
		}
	}
	return writeVarUintEscape(w, n)
}

// writeVarUintEscape handles values that don't fit in 64 bits: spec.md §4.3
// row 6 / §9's "recursive big-integer extension". The recursion terminates
// because (byteCount-9) is always far smaller than n itself (§8: "the
// recursion terminates in O(log log v) layers").
func writeVarUintEscape(w io.Writer, n *big.Int) error {
	raw := n.Bytes() // minimal big-endian unsigned bytes, no leading zero
	byteCount := len(raw)
	if err := mustWriteByte(w, 0xF1); err != nil {
		return err
	}
	if err := writeVarUint(w, big.NewInt(int64(byteCount-9))); err != nil {
		return err
	}
	return mustWrite(w, raw)
}

func readVarUint(r io.Reader) (*big.Int, error) {
	b, err := mustRead(r, 1)
	if err != nil {
		return nil, err
	}
	b0 := b[0]
	switch {
	case b0&0x80 == 0:
		return big.NewInt(int64(b0)), nil
	case b0&0x40 == 0:
		rest, err := mustRead(r, 1)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint16([]byte{b0, rest[0]}) & 0x3FFF
		return big.NewInt(int64(v)), nil
	case b0&0x20 == 0:
		rest, err := mustRead(r, 3)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint32([]byte{b0, rest[0], rest[1], rest[2]}) & 0x1FFFFFFF
		return big.NewInt(int64(v)), nil
	case b0&0x10 == 0:
		rest, err := mustRead(r, 7)
		if err != nil {
			return nil, err
		}
		full := append([]byte{b0}, rest...)
		v := binary.BigEndian.Uint64(full) & 0x0FFFFFFFFFFFFFFF
		return new(big.Int).SetUint64(v), nil
	case b0 == 0xF0:
		rest, err := mustRead(r, 8)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint64(rest)
		return new(big.Int).SetUint64(v), nil
	case b0 == 0xF1:
		countMinus9, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		if !countMinus9.IsInt64() || countMinus9.Sign() < 0 {
			return nil, &ParseError{Offset: -1, Reason: "VarUInt: malformed big-integer byte count"}
		}
		byteCount := countMinus9.Int64() + 9
		raw, err := mustRead(r, int(byteCount))
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(raw), nil
	default:
		return nil, &ParseError{Offset: -1, Reason: "VarUInt: unrecognized prefix byte"}
	}
}

// varUintLen reports the number of bytes writeVarUint(n) would emit without
// a throwaway buffer; varSintLen and bufferLen build on it.
func varUintLen(n *big.Int) int {
	if n.Sign() < 0 {
		return 0
	}
	if n.IsUint64() {
		v := n.Uint64()
		switch {
		case v < vu1Max:
			return 1
		case v < vu2Max:
			return 2
		case v < vu4Max:
			return 4
		case v < vu8Max:
			return 8
		default:
			return 9
		}
	}
	raw := n.Bytes()
	return 1 + varUintLen(big.NewInt(int64(len(raw)-9))) + len(raw)
}

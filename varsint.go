package binon

import (
	"encoding/binary"
	"io"
	"math/big"
)

// VarSInt layers a signed integer atop VarUInt's physical framing (spec.md
// §4.4): the same unary-prefix byte bands are used, but the payload bits
// hold the value's two's-complement representation rather than its raw
// magnitude. This is what backs the IntObj (base) Int payload.
var (
	vs1Lo, vs1Hi = big.NewInt(-(1 << 6)), big.NewInt(1<<6 - 1)
	vs2Lo, vs2Hi = big.NewInt(-(1 << 13)), big.NewInt(1<<13 - 1)
	vs4Lo, vs4Hi = big.NewInt(-(1 << 28)), big.NewInt(1<<28 - 1)
	vs8Lo, vs8Hi = big.NewInt(-(1 << 59)), big.NewInt(1<<59 - 1)
	vs9Lo        = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 63))
	vs9Hi        = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
)

func writeVarSint(w io.Writer, n *big.Int) error {
	switch {
	case between(n, vs1Lo, vs1Hi):
		v := uint8(n.Int64() & 0x7F)
		return mustWriteByte(w, v)
	case between(n, vs2Lo, vs2Hi):
		v := uint16(n.Int64())&0x3FFF | 0x8000
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v)
		return mustWrite(w, b[:])
	case between(n, vs4Lo, vs4Hi):
		v := uint32(n.Int64())&0x1FFFFFFF | 0xC0000000
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], v)
		return mustWrite(w, b[:])
	case between(n, vs8Lo, vs8Hi):
		v := uint64(n.Int64())&0x0FFFFFFFFFFFFFFF | 0xE000000000000000
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		return mustWrite(w, b[:])
	case between(n, vs9Lo, vs9Hi):
		var b [9]byte
		b[0] = 0xF0
		binary.BigEndian.PutUint64(b[1:], uint64(n.Int64()))
		return mustWrite(w, b[:])
	default:
		return writeVarSintEscape(w, n)
	}
}

func between(n, lo, hi *big.Int) bool {
	return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
}

func writeVarSintEscape(w io.Writer, n *big.Int) error {
	raw := twosComplementBytes(n)
	byteCount := len(raw)
	if err := mustWriteByte(w, 0xF1); err != nil {
		return err
	}
	if err := writeVarUint(w, big.NewInt(int64(byteCount-9))); err != nil {
		return err
	}
	return mustWrite(w, raw)
}

func readVarSint(r io.Reader) (*big.Int, error) {
	b, err := mustRead(r, 1)
	if err != nil {
		return nil, err
	}
	b0 := b[0]
	switch {
	case b0&0x80 == 0:
		return signExtend(uint64(b0), 7), nil
	case b0&0x40 == 0:
		rest, err := mustRead(r, 1)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint16([]byte{b0, rest[0]}) & 0x3FFF
		return signExtend(uint64(v), 14), nil
	case b0&0x20 == 0:
		rest, err := mustRead(r, 3)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint32([]byte{b0, rest[0], rest[1], rest[2]}) & 0x1FFFFFFF
		return signExtend(uint64(v), 29), nil
	case b0&0x10 == 0:
		rest, err := mustRead(r, 7)
		if err != nil {
			return nil, err
		}
		full := append([]byte{b0}, rest...)
		v := binary.BigEndian.Uint64(full) & 0x0FFFFFFFFFFFFFFF
		return signExtend(v, 60), nil
	case b0 == 0xF0:
		rest, err := mustRead(r, 8)
		if err != nil {
			return nil, err
		}
		v := binary.BigEndian.Uint64(rest)
		return signExtend(v, 64), nil
	case b0 == 0xF1:
		countMinus9, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		if !countMinus9.IsInt64() || countMinus9.Sign() < 0 {
			return nil, &ParseError{Offset: -1, Reason: "VarSInt: malformed big-integer byte count"}
		}
		byteCount := countMinus9.Int64() + 9
		raw, err := mustRead(r, int(byteCount))
		if err != nil {
			return nil, err
		}
		return fromTwosComplementBytes(raw), nil
	default:
		return nil, &ParseError{Offset: -1, Reason: "VarSInt: unrecognized prefix byte"}
	}
}

// signExtend interprets the low width bits of v as two's complement.
func signExtend(v uint64, width uint) *big.Int {
	signBit := uint64(1) << (width - 1)
	if v&signBit != 0 {
		return new(big.Int).SetInt64(int64(v) - int64(signBit<<1))
	}
	return new(big.Int).SetUint64(v)
}

func varSintLen(n *big.Int) int {
	switch {
	case between(n, vs1Lo, vs1Hi):
		return 1
	case between(n, vs2Lo, vs2Hi):
		return 2
	case between(n, vs4Lo, vs4Hi):
		return 4
	case between(n, vs8Lo, vs8Hi):
		return 8
	case between(n, vs9Lo, vs9Hi):
		return 9
	default:
		raw := twosComplementBytes(n)
		return 1 + varUintLen(big.NewInt(int64(len(raw)-9))) + len(raw)
	}
}

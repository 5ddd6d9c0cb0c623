package binon

import "math/big"

// twosComplementBytes returns the minimal big-endian two's-complement
// representation of n, used by VarSInt's big-integer escape form (spec.md
// §4.4). The result always carries a sign bit consistent with n's sign, so
// fromTwosComplementBytes is its exact inverse.
func twosComplementBytes(n *big.Int) []byte {
	if n.Sign() >= 0 {
		b := n.Bytes()
		if len(b) == 0 {
			return []byte{0}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	m := new(big.Int).Not(n) // -n-1, always >= 0
	byteLen := (m.BitLen() + 8) / 8
	mod := new(big.Int).Lsh(big.NewInt(1), uint(byteLen*8))
	v := new(big.Int).Add(mod, n)
	b := v.Bytes()
	if len(b) < byteLen {
		pad := make([]byte, byteLen-len(b))
		b = append(pad, b...)
	}
	return b
}

func fromTwosComplementBytes(raw []byte) *big.Int {
	if len(raw) == 0 {
		return big.NewInt(0)
	}
	v := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(raw)*8))
		v.Sub(v, mod)
	}
	return v
}

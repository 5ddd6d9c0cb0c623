package memoize

import (
	"bytes"
	"encoding/gob"
	"math/big"

	"github.com/binon-go/binon"
)

// gobValue mirrors binon.Value with exported fields so it can cross a
// byte-only cache boundary (bigcache, redis) via encoding/gob. Value itself
// is deliberately a flat tagged union of unexported fields (spec.md §9); this
// type exists purely as that union's cache-wire counterpart.
type gobValue struct {
	Kind int

	B    bool
	ISign int
	IAbs  []byte
	F     float64
	F32   bool

	Buf  []byte
	Str  string
	List []gobValue
	Dict []gobEntry
}

type gobEntry struct {
	Key   gobValue
	Value gobValue
}

func toGob(v binon.Value) gobValue {
	g := gobValue{Kind: int(v.Kind()), B: v.IsBool(), F: v.AsFloat(), F32: v.IsFloat32(), Buf: v.AsBuffer(), Str: v.AsStr()}
	if n := v.AsInt(); n != nil {
		g.ISign = n.Sign()
		g.IAbs = new(big.Int).Abs(n).Bytes()
	}
	for _, e := range v.Elems() {
		g.List = append(g.List, toGob(e))
	}
	for _, e := range v.Entries() {
		g.Dict = append(g.Dict, gobEntry{Key: toGob(e.Key), Value: toGob(e.Value)})
	}
	return g
}

func fromGob(g gobValue) (binon.Value, error) {
	switch binon.Kind(g.Kind) {
	case binon.KindNull:
		return binon.Null(), nil
	case binon.KindBool:
		return binon.Bool(g.B), nil
	case binon.KindInt:
		n := new(big.Int).SetBytes(g.IAbs)
		if g.ISign < 0 {
			n.Neg(n)
		}
		return binon.BigInt(n), nil
	case binon.KindFloat:
		if g.F32 {
			return binon.Float32(float32(g.F)), nil
		}
		return binon.Float(g.F), nil
	case binon.KindBuffer:
		return binon.Buffer(g.Buf), nil
	case binon.KindStr:
		return binon.Str(g.Str), nil
	case binon.KindList:
		elems := make([]binon.Value, len(g.List))
		for i, e := range g.List {
			v, err := fromGob(e)
			if err != nil {
				return binon.Value{}, err
			}
			elems[i] = v
		}
		return binon.ListOf(elems), nil
	case binon.KindDict:
		entries := make([]binon.DictEntry, len(g.Dict))
		for i, e := range g.Dict {
			k, err := fromGob(e.Key)
			if err != nil {
				return binon.Value{}, err
			}
			val, err := fromGob(e.Value)
			if err != nil {
				return binon.Value{}, err
			}
			entries[i] = binon.DictEntry{Key: k, Value: val}
		}
		return binon.NewDict(entries...)
	default:
		return binon.Value{}, &binon.TypeError{Kind: g.Kind}
	}
}

// encodeForCache gob-encodes v for storage in a byte-only Store.
func encodeForCache(v binon.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(toGob(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeFromCache is encodeForCache's inverse.
func decodeFromCache(b []byte) (binon.Value, error) {
	var g gobValue
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&g); err != nil {
		return binon.Value{}, err
	}
	return fromGob(g)
}

// Package cbor bridges binon.Value to and from CBOR (RFC 8949), for
// interop with systems that speak CBOR rather than BinON on the wire. It
// adapts a generic Codec[V]-style bridge pattern to a fixed V = binon.Value,
// routed through an interface{} tree that fxamacker/cbor already knows how
// to marshal.
package cbor

import (
	"math/big"

	"github.com/binon-go/binon"
	"github.com/fxamacker/cbor/v2"
)

// Bridge is a Codec-shaped CBOR<->binon.Value converter. The zero value is
// not ready to use; construct with New.
type Bridge struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New builds a Bridge. deterministic selects RFC 8949 Core Deterministic
// encoding (stable bytes, useful for hashing/content addressing) over the
// default preferred-unsorted mode.
func New(deterministic bool) (Bridge, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return Bridge{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return Bridge{}, err
	}
	return Bridge{enc: em, dec: dm}, nil
}

// MustNew is like New but panics on error. Handy for package-level
// variables in tests and examples, not for production call sites.
func MustNew(deterministic bool) Bridge {
	b, err := New(deterministic)
	if err != nil {
		panic(err)
	}
	return b
}

// Encode converts v to CBOR bytes.
func (b Bridge) Encode(v binon.Value) ([]byte, error) {
	a, err := toAny(v)
	if err != nil {
		return nil, err
	}
	return b.enc.Marshal(a)
}

// Decode converts CBOR bytes to a binon.Value.
func (b Bridge) Decode(raw []byte) (binon.Value, error) {
	var a any
	if err := b.dec.Unmarshal(raw, &a); err != nil {
		return binon.Value{}, err
	}
	return fromAny(a)
}

func toAny(v binon.Value) (any, error) {
	switch v.Kind() {
	case binon.KindNull:
		return nil, nil
	case binon.KindBool:
		return v.IsBool(), nil
	case binon.KindInt:
		n := v.AsInt()
		if n == nil {
			n = big.NewInt(0)
		}
		return n, nil
	case binon.KindFloat:
		return v.AsFloat(), nil
	case binon.KindBuffer:
		return v.AsBuffer(), nil
	case binon.KindStr:
		return v.AsStr(), nil
	case binon.KindList:
		elems := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			conv, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case binon.KindDict:
		entries := v.Entries()
		out := make(map[any]any, len(entries))
		for _, e := range entries {
			k, err := toAny(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := toAny(e.Value)
			if err != nil {
				return nil, err
			}
			out[k] = val
		}
		return out, nil
	default:
		return nil, &binon.TypeError{Kind: v.Kind()}
	}
}

func fromAny(a any) (binon.Value, error) {
	switch t := a.(type) {
	case nil:
		return binon.Null(), nil
	case bool:
		return binon.Bool(t), nil
	case *big.Int:
		return binon.BigInt(t), nil
	case uint64:
		return binon.BigInt(new(big.Int).SetUint64(t)), nil
	case int64:
		return binon.Int(t), nil
	case float64:
		return binon.Float(t), nil
	case []byte:
		return binon.Buffer(t), nil
	case string:
		return binon.Str(t), nil
	case []any:
		elems := make([]binon.Value, len(t))
		for i, e := range t {
			v, err := fromAny(e)
			if err != nil {
				return binon.Value{}, err
			}
			elems[i] = v
		}
		return binon.ListOf(elems), nil
	case map[any]any:
		entries := make([]binon.DictEntry, 0, len(t))
		for k, v := range t {
			kv, err := fromAny(k)
			if err != nil {
				return binon.Value{}, err
			}
			vv, err := fromAny(v)
			if err != nil {
				return binon.Value{}, err
			}
			entries = append(entries, binon.DictEntry{Key: kv, Value: vv})
		}
		return binon.NewDict(entries...)
	default:
		return binon.Value{}, &binon.TypeError{Kind: a}
	}
}

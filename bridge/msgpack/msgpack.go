// Package msgpack bridges binon.Value to and from MessagePack, for interop
// with systems that speak MsgPack rather than BinON on the wire. It
// adapts a generic Codec[V]-style bridge pattern to a fixed V = binon.Value,
// routed through an interface{} tree that vmihailenco/msgpack already knows
// how to marshal.
//
// MsgPack has no native arbitrary-precision integer type, unlike BinON's
// VarSInt escape form. Values that don't fit in an int64 are carried as a
// single-entry map {"__binon_bigint__": "<decimal string>"} rather than
// silently truncating; Decode recognizes and unwraps this shape.
package msgpack

import (
	"math/big"

	"github.com/binon-go/binon"
	"github.com/vmihailenco/msgpack/v5"
)

const bigIntSentinelKey = "__binon_bigint__"

// Bridge is a Codec-shaped MsgPack<->binon.Value converter. The zero value
// is ready to use.
type Bridge struct{}

func (Bridge) Encode(v binon.Value) ([]byte, error) {
	a, err := toAny(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(a)
}

func (Bridge) Decode(raw []byte) (binon.Value, error) {
	var a any
	if err := msgpack.Unmarshal(raw, &a); err != nil {
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
		if n.IsInt64() {
			return n.Int64(), nil
		}
		return map[string]any{bigIntSentinelKey: n.String()}, nil
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
	case int64:
		return binon.Int(t), nil
	case uint64:
		return binon.BigInt(new(big.Int).SetUint64(t)), nil
	case float64:
		return binon.Float(t), nil
	case float32:
		return binon.Float32(t), nil
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
	case map[string]any:
		if raw, ok := t[bigIntSentinelKey]; ok && len(t) == 1 {
			s, _ := raw.(string)
			n, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return binon.Value{}, &binon.TypeError{Kind: "malformed bigint sentinel"}
			}
			return binon.BigInt(n), nil
		}
		entries := make([]binon.DictEntry, 0, len(t))
		for k, v := range t {
			vv, err := fromAny(v)
			if err != nil {
				return binon.Value{}, err
			}
			entries = append(entries, binon.DictEntry{Key: binon.Str(k), Value: vv})
		}
		return binon.NewDict(entries...)
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

package binon

import (
	"math/big"
)

// Kind identifies which of BinON's eight base types a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBuffer
	KindStr
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBuffer:
		return "buffer"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is a flat tagged union over BinON's value universe (spec.md §3/§9).
// It is immutable from the codec's point of view: Encode never mutates a
// caller's Value, and Decode returns a freshly allocated tree owned by the
// caller.
type Value struct {
	kind Kind

	b   bool
	i   *big.Int
	f   float64
	f32 bool // true if this float was constructed as an explicit 32-bit value

	buf  []byte
	str  string
	list []Value
	dict []DictEntry
}

// DictEntry is one key/value pair of an ordered Dict. BinON dict keys may be
// any hashable Value (including buffers and lists), which are not comparable
// Go map keys, so Dict is represented as an order-preserving slice rather
// than a native map.
type DictEntry struct {
	Key   Value
	Value Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed integer Value from a machine int64.
func Int(v int64) Value { return Value{kind: KindInt, i: big.NewInt(v)} }

// BigInt returns a signed integer Value of arbitrary precision.
func BigInt(v *big.Int) Value { return Value{kind: KindInt, i: new(big.Int).Set(v)} }

// Float returns a 64-bit floating-point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Float32 returns a Value explicitly tagged as a 32-bit float. Encoding this
// Value always uses the Float32 wire form (§4.5), regardless of the
// specialize flag, mirroring spec.md §6's "per-kind shortcuts" surface.
func Float32(v float32) Value { return Value{kind: KindFloat, f: float64(v), f32: true} }

// Buffer returns a byte-buffer Value. The slice is not copied; callers must
// not mutate it after passing it in.
func Buffer(b []byte) Value { return Value{kind: KindBuffer, buf: b} }

// Str returns a text Value. Neither Str nor encoding checks the text; invalid
// UTF-8 is only rejected at decode time, with a ParseError (spec.md §4.6).
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// List returns an ordered-list Value.
func List(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// ListOf returns an ordered-list Value from a slice without copying it.
func ListOf(elems []Value) Value { return Value{kind: KindList, list: elems} }

// NewDict returns a dict Value from ordered entries. Duplicate keys (by
// Value.Equal) are rejected.
func NewDict(entries ...DictEntry) (Value, error) {
	for i := range entries {
		for j := 0; j < i; j++ {
			if entries[i].Key.Equal(entries[j].Key) {
				return Value{}, &TypeError{Kind: "dict: duplicate key"}
			}
		}
	}
	return Value{kind: KindDict, dict: entries}, nil
}

// Kind reports which base type v holds.
func (v Value) Kind() Kind { return v.kind }

// IsBool returns the Bool payload (false for a Value of any other kind).
func (v Value) IsBool() bool { return v.b }

// AsInt returns the Int payload, or nil if v is not an Int.
func (v Value) AsInt() *big.Int { return v.i }

// AsFloat returns the Float payload.
func (v Value) AsFloat() float64 { return v.f }

// IsFloat32 reports whether this Float Value was constructed/decoded as an
// explicit 32-bit value.
func (v Value) IsFloat32() bool { return v.f32 }

// AsBuffer returns the Buffer payload.
func (v Value) AsBuffer() []byte { return v.buf }

// AsStr returns the Str payload.
func (v Value) AsStr() string { return v.str }

// Elems returns the List payload.
func (v Value) Elems() []Value { return v.list }

// Entries returns the Dict payload.
func (v Value) Entries() []DictEntry { return v.dict }

// IsDefault reports whether v equals its kind's zero value (CodeByte's
// "default" subtype shortcut, spec.md §4.1).
func (v Value) IsDefault() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.b
	case KindInt:
		return v.i == nil || v.i.Sign() == 0
	case KindFloat:
		return v.f == 0 && !isNegZero(v.f)
	case KindBuffer:
		return len(v.buf) == 0
	case KindStr:
		return v.str == ""
	case KindList:
		return len(v.list) == 0
	case KindDict:
		return len(v.dict) == 0
	default:
		return false
	}
}

func isNegZero(f float64) bool {
	return f == 0 && mathSignbit(f)
}

// Equal reports deep structural equality, matching decode(encode(v)) = v
// under IEEE 754 bit-pattern equality for NaN (spec.md §8).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		va, oa := v.i, o.i
		if va == nil {
			va = big.NewInt(0)
		}
		if oa == nil {
			oa = big.NewInt(0)
		}
		return va.Cmp(oa) == 0
	case KindFloat:
		return floatBitsEqual(v.f, o.f)
	case KindBuffer:
		if len(v.buf) != len(o.buf) {
			return false
		}
		for i := range v.buf {
			if v.buf[i] != o.buf[i] {
				return false
			}
		}
		return true
	case KindStr:
		return v.str == o.str
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for i := range v.dict {
			if !v.dict[i].Key.Equal(o.dict[i].Key) || !v.dict[i].Value.Equal(o.dict[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

package binon

import (
	"io"
	"math/big"
)

// GList is the general list form (spec.md §4.7): a VarUInt element count
// followed by each element in full self-describing form (its own CodeByte).
func writeGList(w io.Writer, elems []Value, opts codecOptions) error {
	if err := writeVarUint(w, big.NewInt(int64(len(elems)))); err != nil {
		return err
	}
	for i := range elems {
		if err := encodeValue(w, elems[i], opts); err != nil {
			return err
		}
	}
	return nil
}

func readGList(r io.Reader, opts codecOptions) ([]Value, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "list: length too large"}
	}
	count := int(n.Int64())
	elems := make([]Value, count)
	for i := 0; i < count; i++ {
		v, err := decodeValue(r, opts)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return elems, nil
}

// slistTag returns the shared element-kind tag byte SList writes once, right
// after the element count. Every kind but Bool tags itself as its base
// (unspecialized) form; Bool instead tags as its default form, since a
// packed bit-string carries no per-element specialization of its own.
func slistTag(k Kind) (codeByte, error) {
	switch k {
	case KindNull:
		return newCodeByte(baseNull, subDefault), nil
	case KindBool:
		return newCodeByte(baseBool, subDefault), nil
	case KindInt:
		return newCodeByte(baseInt, subBase), nil
	case KindFloat:
		return newCodeByte(baseFloat, subBase), nil
	case KindBuffer:
		return newCodeByte(baseBuffer, subBase), nil
	case KindStr:
		return newCodeByte(baseStr, subBase), nil
	case KindList:
		return newCodeByte(baseList, subBase), nil
	case KindDict:
		return newCodeByte(baseDict, subBase), nil
	default:
		return 0, &TypeError{Kind: k}
	}
}

// writeSList emits the specialized homogeneous list form: a shared tag byte
// in place of N per-element CodeBytes, with Bool further bit-packed MSB
// first and zero-padded in its final byte (spec.md §4.7, §8's bool-list
// scenario).
func writeSList(w io.Writer, elems []Value, kind Kind, opts codecOptions) error {
	if err := writeVarUint(w, big.NewInt(int64(len(elems)))); err != nil {
		return err
	}
	tag, err := slistTag(kind)
	if err != nil {
		return err
	}
	if err := tag.write(w); err != nil {
		return err
	}
	if kind == KindBool {
		return writeBoolBits(w, elems)
	}
	for i := range elems {
		if err := writeElemPayload(w, elems[i], opts); err != nil {
			return err
		}
	}
	return nil
}

func readSList(r io.Reader, opts codecOptions) ([]Value, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "slist: length too large"}
	}
	count := int(n.Int64())
	tag, err := readCodeByte(r)
	if err != nil {
		return nil, err
	}
	if tag.base() == baseBool {
		return readBoolBits(r, count)
	}
	elems := make([]Value, count)
	for i := 0; i < count; i++ {
		v, err := readElemPayload(r, tag, opts)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return elems, nil
}

func writeBoolBits(w io.Writer, elems []Value) error {
	nbytes := (len(elems) + 7) / 8
	packed := make([]byte, nbytes)
	for i, v := range elems {
		if v.IsBool() {
			packed[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return mustWrite(w, packed)
}

func readBoolBits(r io.Reader, count int) ([]Value, error) {
	nbytes := (count + 7) / 8
	packed, err := mustRead(r, nbytes)
	if err != nil {
		return nil, err
	}
	elems := make([]Value, count)
	for i := 0; i < count; i++ {
		bit := packed[i/8]&(0x80>>uint(i%8)) != 0
		elems[i] = Bool(bit)
	}
	return elems, nil
}

// writeElemPayload writes just the data matching an SList's shared tag: no
// CodeByte, since the tag already pins every element's kind and subtype.
func writeElemPayload(w io.Writer, v Value, opts codecOptions) error {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return &TypeError{Kind: "bool: handled via bit-packing, not per-element payload"}
	case KindInt:
		return writeVarSint(w, v.AsInt())
	case KindFloat:
		return writeFloat64(w, v.AsFloat())
	case KindBuffer:
		return writeBuffer(w, v.AsBuffer())
	case KindStr:
		return writeStr(w, v.AsStr())
	case KindList:
		return writeGList(w, v.Elems(), opts)
	case KindDict:
		return writeGDictPayload(w, v.Entries(), opts)
	default:
		return &TypeError{Kind: v.Kind()}
	}
}

func readElemPayload(r io.Reader, tag codeByte, opts codecOptions) (Value, error) {
	switch tag.base() {
	case baseNull:
		return Null(), nil
	case baseInt:
		n, err := readVarSint(r)
		if err != nil {
			return Value{}, err
		}
		return BigInt(n), nil
	case baseFloat:
		f, err := readFloat64(r)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case baseBuffer:
		b, err := readBuffer(r)
		if err != nil {
			return Value{}, err
		}
		return Buffer(b), nil
	case baseStr:
		s, err := readStr(r)
		if err != nil {
			return Value{}, err
		}
		return Str(s), nil
	case baseList:
		elems, err := readGList(r, opts)
		if err != nil {
			return Value{}, err
		}
		return ListOf(elems), nil
	case baseDict:
		entries, err := readGDictPayload(r, opts)
		if err != nil {
			return Value{}, err
		}
		return NewDict(entries...)
	default:
		return Value{}, &ParseError{Offset: -1, Reason: "slist: unsupported element tag"}
	}
}

package binon

import (
	"bytes"
	"io"
)

// Marshal encodes v to a new byte slice. When specialize is true the
// encoder's optimizer picks the tightest legal wire form for every scalar,
// list, and dict it can (spec.md §4.10); when false, each value is written
// in its default (zero-value) or base form, except that a Value built with
// Float32 still uses the Float32 form.
func Marshal(v Value, specialize bool) ([]byte, error) {
	return MarshalOptions(v, Options{Specialize: specialize})
}

// MarshalOptions encodes v to a new byte slice under opts.
func MarshalOptions(v Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes v to w as a single BinON value.
func Encode(w io.Writer, v Value, opts Options) error {
	return encodeValue(w, v, newCodecOptions(opts))
}

func encodeValue(w io.Writer, v Value, opts codecOptions) error {
	switch v.Kind() {
	case KindNull:
		return newCodeByte(baseNull, subDefault).write(w)
	case KindBool:
		return encodeBool(w, v, opts)
	case KindInt:
		return encodeInt(w, v, opts)
	case KindFloat:
		return encodeFloat(w, v, opts)
	case KindBuffer:
		return encodeBuffer(w, v, opts)
	case KindStr:
		return encodeStr(w, v, opts)
	case KindList:
		return encodeList(w, v, opts)
	case KindDict:
		return encodeDict(w, v, opts)
	default:
		return &TypeError{Kind: v.Kind()}
	}
}

func encodeBool(w io.Writer, v Value, opts codecOptions) error {
	if !v.IsBool() {
		return newCodeByte(baseBool, subDefault).write(w)
	}
	if opts.specialize {
		return newCodeByte(baseBool, subBoolTrue).write(w)
	}
	if err := newCodeByte(baseBool, subBase).write(w); err != nil {
		return err
	}
	return mustWriteByte(w, 1)
}

func encodeInt(w io.Writer, v Value, opts codecOptions) error {
	n := v.AsInt()
	if n == nil || n.Sign() == 0 {
		return newCodeByte(baseInt, subDefault).write(w)
	}
	if opts.specialize && n.Sign() > 0 {
		if !n.IsUint64() {
			opts.hooks.BigIntEscape(len(n.Bytes()))
		}
		if err := newCodeByte(baseInt, subIntUInt).write(w); err != nil {
			return err
		}
		return writeVarUint(w, n)
	}
	if !between(n, vs9Lo, vs9Hi) {
		opts.hooks.BigIntEscape(len(twosComplementBytes(n)))
	}
	if err := newCodeByte(baseInt, subBase).write(w); err != nil {
		return err
	}
	return writeVarSint(w, n)
}

func encodeFloat(w io.Writer, v Value, opts codecOptions) error {
	f := v.AsFloat()
	if f == 0 && !mathSignbit(f) {
		return newCodeByte(baseFloat, subDefault).write(w)
	}
	if v.IsFloat32() || (opts.specialize && canExactFloat32(f)) {
		if err := newCodeByte(baseFloat, subFloat32).write(w); err != nil {
			return err
		}
		return writeFloat32(w, float32(f))
	}
	if err := newCodeByte(baseFloat, subBase).write(w); err != nil {
		return err
	}
	return writeFloat64(w, f)
}

func encodeBuffer(w io.Writer, v Value, opts codecOptions) error {
	b := v.AsBuffer()
	if len(b) == 0 {
		return newCodeByte(baseBuffer, subDefault).write(w)
	}
	if err := newCodeByte(baseBuffer, subBase).write(w); err != nil {
		return err
	}
	return writeBuffer(w, b)
}

func encodeStr(w io.Writer, v Value, opts codecOptions) error {
	s := v.AsStr()
	if s == "" {
		return newCodeByte(baseStr, subDefault).write(w)
	}
	if err := newCodeByte(baseStr, subBase).write(w); err != nil {
		return err
	}
	return writeStr(w, s)
}

func encodeList(w io.Writer, v Value, opts codecOptions) error {
	elems := v.Elems()
	if len(elems) == 0 {
		return newCodeByte(baseList, subDefault).write(w)
	}
	nested, err := opts.nested()
	if err != nil {
		return err
	}
	if opts.specialize {
		if kind, ok := listSpecialization(elems); ok {
			if err := newCodeByte(baseList, subListSList).write(w); err != nil {
				return err
			}
			return writeSList(w, elems, kind, nested)
		}
		opts.hooks.SpecializeFallback(KindList, "elements do not share a single kind")
	}
	if err := newCodeByte(baseList, subBase).write(w); err != nil {
		return err
	}
	return writeGList(w, elems, nested)
}

func encodeDict(w io.Writer, v Value, opts codecOptions) error {
	entries := v.Entries()
	if len(entries) == 0 {
		return newCodeByte(baseDict, subDefault).write(w)
	}
	nested, err := opts.nested()
	if err != nil {
		return err
	}
	if opts.specialize {
		keyKind, valKind, sameKey, sameVal := dictSpecialization(entries)
		switch {
		case sameKey && sameVal:
			if err := newCodeByte(baseDict, subDictSDict).write(w); err != nil {
				return err
			}
			return writeSDict(w, entries, keyKind, valKind, nested)
		case sameKey:
			if err := newCodeByte(baseDict, subDictSKDict).write(w); err != nil {
				return err
			}
			return writeSKDict(w, entries, keyKind, nested)
		default:
			opts.hooks.SpecializeFallback(KindDict, "keys do not share a single kind")
		}
	}
	if err := newCodeByte(baseDict, subBase).write(w); err != nil {
		return err
	}
	return writeGDictPayload(w, entries, nested)
}

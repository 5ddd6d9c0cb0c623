package binon

import "io"

// decodeFunc decodes a value's payload given the subtype nibble already read
// off its CodeByte. Kinds whose default/base/specialized forms carry no
// payload (Null, Bool's default/true) return without consuming further
// bytes.
type decodeFunc func(r io.Reader, sub byte, opts codecOptions) (Value, error)

// decoders dispatches on a CodeByte's base-type nibble (spec.md §9's "one
// registry, populated once" design note). Each entry owns every subtype of
// its base type rather than spreading that logic across callers.
var decoders map[baseType]decodeFunc

func init() {
	decoders = map[baseType]decodeFunc{
		baseNull:   decodeNull,
		baseBool:   decodeBool,
		baseInt:    decodeInt,
		baseFloat:  decodeFloat,
		baseBuffer: decodeBufferKind,
		baseStr:    decodeStrKind,
		baseList:   decodeListKind,
		baseDict:   decodeDictKind,
	}
}

func decodeNull(_ io.Reader, sub byte, opts codecOptions) (Value, error) {
	if sub != subDefault {
		return Value{}, unknownSubtype(baseNull, sub, opts)
	}
	return Null(), nil
}

func decodeBool(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return Bool(false), nil
	case subBoolTrue:
		return Bool(true), nil
	case subBase:
		b, err := mustRead(r, 1)
		if err != nil {
			return Value{}, err
		}
		return Bool(b[0] != 0), nil
	default:
		return Value{}, unknownSubtype(baseBool, sub, opts)
	}
}

func decodeInt(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return Int(0), nil
	case subIntUInt:
		n, err := readVarUint(r)
		if err != nil {
			return Value{}, err
		}
		return BigInt(n), nil
	case subBase:
		n, err := readVarSint(r)
		if err != nil {
			return Value{}, err
		}
		return BigInt(n), nil
	default:
		return Value{}, unknownSubtype(baseInt, sub, opts)
	}
}

func decodeFloat(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return Float(0), nil
	case subFloat32:
		f, err := readFloat32(r)
		if err != nil {
			return Value{}, err
		}
		return Float32(f), nil
	case subBase:
		f, err := readFloat64(r)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	default:
		return Value{}, unknownSubtype(baseFloat, sub, opts)
	}
}

func decodeBufferKind(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return Buffer(nil), nil
	case subBase:
		b, err := readBuffer(r)
		if err != nil {
			return Value{}, err
		}
		return Buffer(b), nil
	default:
		return Value{}, unknownSubtype(baseBuffer, sub, opts)
	}
}

func decodeStrKind(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return Str(""), nil
	case subBase:
		s, err := readStr(r)
		if err != nil {
			return Value{}, err
		}
		return Str(s), nil
	default:
		return Value{}, unknownSubtype(baseStr, sub, opts)
	}
}

func decodeListKind(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return ListOf(nil), nil
	case subBase:
		nested, err := opts.nested()
		if err != nil {
			return Value{}, err
		}
		elems, err := readGList(r, nested)
		if err != nil {
			return Value{}, err
		}
		return ListOf(elems), nil
	case subListSList:
		nested, err := opts.nested()
		if err != nil {
			return Value{}, err
		}
		elems, err := readSList(r, nested)
		if err != nil {
			return Value{}, err
		}
		return ListOf(elems), nil
	default:
		return Value{}, unknownSubtype(baseList, sub, opts)
	}
}

func decodeDictKind(r io.Reader, sub byte, opts codecOptions) (Value, error) {
	switch sub {
	case subDefault:
		return NewDict()
	case subBase:
		nested, err := opts.nested()
		if err != nil {
			return Value{}, err
		}
		entries, err := readGDictPayload(r, nested)
		if err != nil {
			return Value{}, err
		}
		return NewDict(entries...)
	case subDictSKDict:
		nested, err := opts.nested()
		if err != nil {
			return Value{}, err
		}
		entries, err := readSKDict(r, nested)
		if err != nil {
			return Value{}, err
		}
		return NewDict(entries...)
	case subDictSDict:
		nested, err := opts.nested()
		if err != nil {
			return Value{}, err
		}
		entries, err := readSDict(r, nested)
		if err != nil {
			return Value{}, err
		}
		return NewDict(entries...)
	default:
		return Value{}, unknownSubtype(baseDict, sub, opts)
	}
}

func unknownSubtype(base baseType, sub byte, opts codecOptions) error {
	b := byte(newCodeByte(base, sub))
	opts.hooks.UnknownCodeByte(b)
	return &ParseError{Offset: -1, Reason: "unrecognized CodeByte"}
}

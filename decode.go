package binon

import (
	"bytes"
	"errors"
	"io"
)

// Unmarshal decodes a single BinON value from b.
func Unmarshal(b []byte) (Value, error) {
	return UnmarshalOptions(b, Options{})
}

// UnmarshalOptions decodes a single BinON value from b under opts.
func UnmarshalOptions(b []byte, opts Options) (Value, error) {
	return Decode(bytes.NewReader(b), opts)
}

// Decode reads a single BinON value from r under opts.
func Decode(r io.Reader, opts Options) (Value, error) {
	co := newCodecOptions(opts)
	v, err := decodeValue(r, co)
	var eof *EndOfFileError
	if errors.As(err, &eof) {
		co.hooks.ShortRead(eof.Requested, eof.Got)
	}
	return v, err
}

func decodeValue(r io.Reader, opts codecOptions) (Value, error) {
	cb, err := readCodeByte(r)
	if err != nil {
		return Value{}, err
	}
	dec, ok := decoders[cb.base()]
	if !ok {
		return Value{}, unknownSubtype(cb.base(), cb.sub(), opts)
	}
	return dec(r, cb.sub(), opts)
}

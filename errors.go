package binon

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownType marks an encoder's source kind having no registered codec.
var ErrUnknownType = errors.New("binon: unknown type")

// ErrParse marks a malformed encoding: unrecognized code byte, malformed
// VarUInt/VarSInt header, or invalid UTF-8 in a Str.
var ErrParse = errors.New("binon: parse error")

// TypeError is raised by the encoder when a value's source kind has no
// registered encoder.
type TypeError struct {
	Kind any // the offending Kind or Go type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("binon: no encoder registered for %v", e.Kind)
}

func (e *TypeError) Unwrap() error { return ErrUnknownType }

// ParseError is raised by the decoder on an unrecognized code byte, a
// malformed VarUInt/VarSInt header, or invalid UTF-8 in a Str.
type ParseError struct {
	Offset int // best-effort byte offset into the logical value, -1 if unknown
	Reason string
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("binon: parse error at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("binon: parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// EndOfFileError is raised by the must-read I/O primitive when the source
// returns fewer bytes than requested.
type EndOfFileError struct {
	Requested int
	Got       int
	Err       error // the underlying io.EOF / io.ErrUnexpectedEOF, if any
}

func (e *EndOfFileError) Error() string {
	return fmt.Sprintf("binon: short read: wanted %d bytes, got %d", e.Requested, e.Got)
}

func (e *EndOfFileError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return io.EOF
}

// IoError wraps a failure signaled by the caller's byte sink or byte source.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return fmt.Sprintf("binon: io error: %v", e.Err) }
func (e *IoError) Unwrap() error { return e.Err }

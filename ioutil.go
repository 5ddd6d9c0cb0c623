package binon

import (
	"errors"
	"io"
)

// mustRead reads exactly n bytes from r or fails. This is the must_read
// primitive from spec.md §1/§6: callers never see a short read silently
// truncated, it is always promoted to an EndOfFileError.
func mustRead(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &EndOfFileError{Requested: n, Got: got, Err: err}
		}
		return nil, &IoError{Err: err}
	}
	return buf, nil
}

// mustWrite writes b to w in full, translating any failure into an IoError.
func mustWrite(w io.Writer, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return &IoError{Err: err}
	}
	return nil
}

func mustWriteByte(w io.Writer, b byte) error {
	return mustWrite(w, []byte{b})
}

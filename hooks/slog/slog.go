// Package sloghooks implements binon.Hooks on top of log/slog, sampling
// high-frequency events (every big-int escape, say) to avoid flooding the
// log at scale.
package sloghooks

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/binon-go/binon"
	"github.com/dustin/go-humanize"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	BigIntEscapeEvery uint64
	// Optional CodeByte redactor. Defaults to a plain "0x%02x" render; set
	// this if unknown-codebyte logs must not leak raw wire bytes.
	RedactByte func(byte) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	bigIntCtr atomic.Uint64
}

var _ binon.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) renderByte(b byte) string {
	if h.opts.RedactByte != nil {
		return h.opts.RedactByte(b)
	}
	return fmt.Sprintf("0x%02x", b)
}

func (h *Hooks) BigIntEscape(byteCount int) {
	if h.l == nil || !sample(h.opts.BigIntEscapeEvery, &h.bigIntCtr) {
		return
	}
	h.l.Debug("binon.bigint_escape",
		"size", humanize.Bytes(uint64(byteCount)))
}

func (h *Hooks) SpecializeFallback(kind binon.Kind, reason string) {
	if h.l == nil {
		return
	}
	h.l.Debug("binon.specialize_fallback",
		"kind", kind.String(),
		"reason", reason)
}

func (h *Hooks) UnknownCodeByte(b byte) {
	if h.l == nil {
		return
	}
	h.l.Warn("binon.unknown_code_byte",
		"byte", h.renderByte(b))
}

func (h *Hooks) ShortRead(requested, got int) {
	if h.l == nil {
		return
	}
	h.l.Warn("binon.short_read",
		"requested", humanize.Bytes(uint64(requested)),
		"got", humanize.Bytes(uint64(got)))
}

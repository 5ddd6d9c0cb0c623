package binon

import "go.uber.org/multierr"

// Hooks are lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking; do not perform I/O.
// If work may block, buffer it and drop on backpressure (best effort) —
// see hooks/async for a bounded-queue wrapper.
type Hooks interface {
	// BigIntEscape fires when an Int written with its own CodeByte falls
	// outside the 64-bit VarUInt / VarSInt bands and is written via the
	// arbitrary-precision escape form. Int elements inside SList/SKDict/SDict
	// payloads do not fire it.
	BigIntEscape(byteCount int)
	// SpecializeFallback fires when, with specialization on, a non-empty
	// List or Dict is written in its base form because its elements (or
	// keys) do not share a single kind; reason says which (e.g. "elements
	// do not share a single kind"). Scalars never fire it.
	SpecializeFallback(kind Kind, reason string)
	// UnknownCodeByte fires when a decoder encounters a CodeByte whose
	// base/subtype combination is not registered.
	UnknownCodeByte(b byte)
	// ShortRead fires when a read was truncated before EndOfFileError is
	// returned to the caller.
	ShortRead(requested, got int)
}

// NopHooks is a default no-op.
type NopHooks struct{}

func (NopHooks) BigIntEscape(int)             {}
func (NopHooks) SpecializeFallback(Kind, string) {}
func (NopHooks) UnknownCodeByte(byte)         {}
func (NopHooks) ShortRead(int, int)           {}

// Multi returns a Hooks that fans out to all provided hooks, in order. Nil
// entries are ignored. Hooks have no return value to aggregate, so Multi
// uses multierr only internally to recover and join panics from individual
// hooks rather than letting one bad hook abort the rest of the fan-out.
//
// example usage:
//
//	logH := sloghooks.New(slog.Default(), sloghooks.Options{BigIntEscapeEvery: 10})
//	metH := prometheushooks.New(...)
//
//	hooks := binon.Multi(logH, metH)
func Multi(hs ...Hooks) Hooks {
	nn := make([]Hooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			nn = append(nn, h)
		}
	}
	return multiHooks(nn)
}

type multiHooks []Hooks

func (m multiHooks) call(fn func(Hooks)) {
	var errs error
	for _, h := range m {
		errs = multierr.Append(errs, safeCall(fn, h))
	}
	_ = errs // hooks are fire-and-forget; panics are swallowed, not surfaced
}

func safeCall(fn func(Hooks), h Hooks) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{r}
		}
	}()
	fn(h)
	return nil
}

type panicError struct{ v any }

func (p panicError) Error() string { return "binon: hook panicked" }

func (m multiHooks) BigIntEscape(n int) {
	m.call(func(h Hooks) { h.BigIntEscape(n) })
}
func (m multiHooks) SpecializeFallback(k Kind, reason string) {
	m.call(func(h Hooks) { h.SpecializeFallback(k, reason) })
}
func (m multiHooks) UnknownCodeByte(b byte) {
	m.call(func(h Hooks) { h.UnknownCodeByte(b) })
}
func (m multiHooks) ShortRead(requested, got int) {
	m.call(func(h Hooks) { h.ShortRead(requested, got) })
}

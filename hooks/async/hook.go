// Package asynchook wraps a binon.Hooks in a bounded worker queue so a slow
// or blocking hook implementation (an HTTP-backed metrics client, say)
// cannot stall the codec's hot path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{BigIntEscapeEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker, queue depth 1000
//	defer hooks.Close()
//
//	b, _ := binon.MarshalOptions(v, binon.Options{Specialize: true, Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/binon-go/binon"
)

type Hooks struct {
	inner binon.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ binon.Hooks = (*Hooks)(nil)

func New(inner binon.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) BigIntEscape(n int) { h.try(func() { h.inner.BigIntEscape(n) }) }
func (h *Hooks) SpecializeFallback(k binon.Kind, reason string) {
	h.try(func() { h.inner.SpecializeFallback(k, reason) })
}
func (h *Hooks) UnknownCodeByte(b byte) { h.try(func() { h.inner.UnknownCodeByte(b) }) }
func (h *Hooks) ShortRead(requested, got int) {
	h.try(func() { h.inner.ShortRead(requested, got) })
}

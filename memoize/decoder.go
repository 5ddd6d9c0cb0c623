package memoize

import (
	"bytes"
	"context"
	"time"

	"github.com/binon-go/binon"
	"github.com/binon-go/binon/internal/util"
)

// Decoder memoizes Decode calls across a Store, keyed by the content hash of
// the raw encoded bytes. It is safe for concurrent use iff the underlying
// Store is.
type Decoder struct {
	store   Store
	opts    binon.Options
	ttl     time.Duration
	cost    func(raw []byte) int64
	hashKey func(raw []byte) string
}

// NewDecoder builds a Decoder over store. ttl is the cache entry lifetime
// (zero means "no expiry", subject to the store's own eviction policy); cost
// estimates an entry's weight for cost-aware stores (ristretto) and may be
// nil, in which case len(raw) is used. Keys are derived with util.ContentHash
// (SHA-256); use NewFastDecoder for an in-process-only store where that cost
// isn't worth paying.
func NewDecoder(store Store, opts binon.Options, ttl time.Duration, cost func(raw []byte) int64) *Decoder {
	return newDecoder(store, opts, ttl, cost, util.ContentHash)
}

// NewFastDecoder is NewDecoder keyed with util.FastHash (xxhash) instead of
// ContentHash's SHA-256, for stores that never leave this process (e.g.
// memoize/ristretto) where adversarial collision resistance isn't a concern.
func NewFastDecoder(store Store, opts binon.Options, ttl time.Duration, cost func(raw []byte) int64) *Decoder {
	return newDecoder(store, opts, ttl, cost, util.FastHash)
}

func newDecoder(store Store, opts binon.Options, ttl time.Duration, cost func(raw []byte) int64, hashKey func([]byte) string) *Decoder {
	if cost == nil {
		cost = func(raw []byte) int64 { return int64(len(raw)) }
	}
	return &Decoder{store: store, opts: opts, ttl: ttl, cost: cost, hashKey: hashKey}
}

// Decode returns the decoded value for raw, served from cache on a repeat of
// the exact same bytes.
func (d *Decoder) Decode(ctx context.Context, raw []byte) (binon.Value, error) {
	key := d.hashKey(raw)

	if cached, hit, err := d.store.Get(ctx, key); err == nil && hit {
		if v, err := decodeFromCache(cached); err == nil {
			return v, nil
		}
		// Corrupt or stale cache entry: fall through and re-decode.
		_ = d.store.Del(ctx, key)
	}

	v, err := binon.Decode(bytes.NewReader(raw), d.opts)
	if err != nil {
		return binon.Value{}, err
	}

	if enc, err := encodeForCache(v); err == nil {
		_, _ = d.store.Set(ctx, key, enc, d.cost(raw), d.ttl)
	}
	return v, nil
}

// Close releases the underlying store's resources.
func (d *Decoder) Close(ctx context.Context) error {
	return d.store.Close(ctx)
}

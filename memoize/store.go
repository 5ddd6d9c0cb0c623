// Package memoize caches decoded BinON values keyed by the content hash of
// their source bytes, so a Decoder need not re-walk identical wire payloads
// (e.g. a deduplicated log/event stream replaying the same encoded record).
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g. compression), they MUST be fully
// reversed so that the bytes returned by Get are identical to the bytes
// provided to Set.
package memoize

import (
	"context"
	"time"
)

// Store is a minimal byte store with TTLs, backing Decoder's cache
// (ristretto, bigcache, redis). Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// Package decodecache memoizes decode results keyed by a digest of the
// exact encoded byte span, so repeated decodes of identical content
// (a config blob re-decoded on every request, the same Bytes payload
// recurring across records in a stream) reuse the previously decoded
// value instead of re-parsing. It is grounded in tsrkit_types/bytes.py's
// module-level _BYTES_DECODE_CACHE, generalized from "Bytes only" to any
// Codable via the interop package's Codec[V], and backed by a pluggable
// byte store so the cache can live in-process (ristretto/bigcache) or be
// shared across replicas (redis).
//
// Implementations of Provider MUST be byte-for-byte transparent: Get
// must return exactly the same []byte that was previously passed to Set
// for a key (no prepended/appended metadata, no re-encoding, no
// mutation). If a store performs internal transforms (e.g. compression),
// they MUST be fully reversed so the bytes returned by Get are identical
// to the bytes provided to Set.
package decodecache

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for
// concurrent use.
type Provider interface {
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

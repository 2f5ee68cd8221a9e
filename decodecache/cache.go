package decodecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Chainscore/tsrkit-types/interop"
)

// Cache memoizes the decode of a Codable value of type V, keyed by the
// sha256 digest of the exact raw bytes being decoded. A hit returns the
// previously decoded value (via Codec, so it can live behind a byte-only
// Provider); a miss runs decode and stores the result before returning
// it. Digest collisions are treated as ordinary cache hits, matching
// bytes.py's original cache (which also keys on a content hash, not on
// byte-for-byte equality).
type Cache[V any] struct {
	Provider  Provider
	Codec     interop.Codec[V]
	Namespace string
	TTL       time.Duration
	Cost      int64
}

func (c *Cache[V]) key(raw []byte) string {
	sum := sha256.Sum256(raw)
	return c.Namespace + ":" + hex.EncodeToString(sum[:16])
}

// Get looks up raw's digest in the cache, decoding the stored bytes with
// Codec on a hit.
func (c *Cache[V]) Get(ctx context.Context, raw []byte) (V, bool, error) {
	var zero V
	framed, ok, err := c.Provider.Get(ctx, c.key(raw))
	if err != nil || !ok {
		return zero, false, err
	}
	b, err := frameDecode(framed)
	if err != nil {
		// A corrupt envelope is a miss, not a propagated error: the
		// caller's own rawDecode is always the source of truth.
		return zero, false, nil
	}
	v, err := c.Codec.Decode(b)
	if err != nil {
		return zero, false, nil
	}
	return v, true, nil
}

// Put stores v under raw's digest, serialized with Codec and wrapped in
// the versioned frame envelope.
func (c *Cache[V]) Put(ctx context.Context, raw []byte, v V) error {
	b, err := c.Codec.Encode(v)
	if err != nil {
		return err
	}
	_, err = c.Provider.Set(ctx, c.key(raw), frameEncode(b), c.Cost, c.TTL)
	return err
}

// GetOrDecode returns the cached value for raw if present; otherwise it
// calls rawDecode, caches the result, and returns it. rawDecode errors
// are never cached.
func (c *Cache[V]) GetOrDecode(ctx context.Context, raw []byte, rawDecode func([]byte) (V, error)) (V, error) {
	if v, ok, err := c.Get(ctx, raw); err == nil && ok {
		return v, nil
	}
	v, err := rawDecode(raw)
	if err != nil {
		var zero V
		return zero, err
	}
	_ = c.Put(ctx, raw, v)
	return v, nil
}

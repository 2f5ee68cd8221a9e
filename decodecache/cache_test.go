package decodecache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Chainscore/tsrkit-types/interop"
)

// memProvider is an in-process Provider for tests.
type memProvider struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemProvider() *memProvider { return &memProvider{m: make(map[string][]byte)} }

func (p *memProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.m[key]
	return b, ok, nil
}

func (p *memProvider) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[key] = value
	return true, nil
}

func (p *memProvider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.m, key)
	return nil
}

func (p *memProvider) Close(context.Context) error { return nil }

var _ Provider = (*memProvider)(nil)

func TestCacheGetOrDecodeMissThenHit(t *testing.T) {
	cache := &Cache[string]{
		Provider:  newMemProvider(),
		Codec:     interop.JSON[string]{},
		Namespace: "test",
		TTL:       time.Minute,
	}

	calls := 0
	rawDecode := func(raw []byte) (string, error) {
		calls++
		return string(raw) + "-decoded", nil
	}

	ctx := context.Background()
	raw := []byte("payload")

	v1, err := cache.GetOrDecode(ctx, raw, rawDecode)
	if err != nil || v1 != "payload-decoded" {
		t.Fatalf("got (%v,%v)", v1, err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 decode call, got %d", calls)
	}

	v2, err := cache.GetOrDecode(ctx, raw, rawDecode)
	if err != nil || v2 != "payload-decoded" {
		t.Fatalf("got (%v,%v)", v2, err)
	}
	if calls != 1 {
		t.Fatalf("expected cache hit to skip rawDecode, got %d calls", calls)
	}
}

func TestCacheDistinctPayloadsDoNotCollide(t *testing.T) {
	cache := &Cache[string]{
		Provider:  newMemProvider(),
		Codec:     interop.JSON[string]{},
		Namespace: "test",
	}
	ctx := context.Background()

	_ = cache.Put(ctx, []byte("a"), "A")
	_ = cache.Put(ctx, []byte("b"), "B")

	va, ok, _ := cache.Get(ctx, []byte("a"))
	vb, ok2, _ := cache.Get(ctx, []byte("b"))
	if !ok || !ok2 || va != "A" || vb != "B" {
		t.Fatalf("got (%v,%v,%v,%v)", va, ok, vb, ok2)
	}
}

func TestCacheRawDecodeErrorsNotCached(t *testing.T) {
	cache := &Cache[string]{
		Provider:  newMemProvider(),
		Codec:     interop.JSON[string]{},
		Namespace: "test",
	}
	ctx := context.Background()
	calls := 0
	failing := func([]byte) (string, error) {
		calls++
		return "", errTestDecode
	}

	if _, err := cache.GetOrDecode(ctx, []byte("x"), failing); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := cache.GetOrDecode(ctx, []byte("x"), failing); err == nil {
		t.Fatalf("expected decode error again (nothing cached)")
	}
	if calls != 2 {
		t.Fatalf("expected rawDecode called twice, got %d", calls)
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

const errTestDecode = testErr("decode failed")

package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	dc "github.com/Chainscore/tsrkit-types/decodecache"
)

// Redis is a decodecache.Provider backed by redis/go-redis. Get rejects
// any stored value that doesn't carry a decodecache frame envelope (see
// dc.IsFrame), self-healing by deleting it rather than handing a foreign
// or corrupted entry back to Cache — relevant when the same Redis
// keyspace is shared with other, non-decodecache writers.
type Redis struct {
	rdb goredis.UniversalClient
}

var _ dc.Provider = (*Redis)(nil)

type Config struct {
	Client goredis.UniversalClient
}

var ErrNilClient = errors.New("redis provider: nil client")

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client}, nil
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	if !dc.IsFrame(b) {
		// Self-heal: not a decodecache frame envelope -> delete and miss.
		_ = p.rdb.Del(ctx, key).Err()
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	err := p.rdb.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

func (p *Redis) Close(context.Context) error {
	return p.rdb.Close()
}

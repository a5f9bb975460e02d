// Package redis keeps Idempotency-Key results so a retried create request
// returns the order that the first attempt produced.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "roomservice:idempotency"

// IdempotencyStore maps (scope, key) pairs to created order ids.
type IdempotencyStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewIdempotencyStore connects lazily; use Ping to fail fast at startup.
func NewIdempotencyStore(addr string, ttl time.Duration) *IdempotencyStore {
	return NewIdempotencyStoreFromClient(goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}), ttl)
}

func NewIdempotencyStoreFromClient(client *goredis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Lookup returns the id remembered for the key. found is false when the key
// was never used or has expired.
func (s *IdempotencyStore) Lookup(ctx context.Context, scope, key string) (id int64, found bool, err error) {
	raw, err := s.client.Get(ctx, redisKey(scope, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: corrupt value %q: %w", raw, err)
	}
	return id, true, nil
}

// Remember stores id for the key unless the key is already taken. The first
// writer wins; a later call with a different id leaves the stored one.
func (s *IdempotencyStore) Remember(ctx context.Context, scope, key string, id int64) error {
	if err := s.client.SetNX(ctx, redisKey(scope, key), id, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Close() error {
	return s.client.Close()
}

func redisKey(scope, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, scope, key)
}

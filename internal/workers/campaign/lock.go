package campaign

import (
	"context"
	"time"

	"notify-server/internal/clients/redis"
)

type advisoryLockStore interface {
	TryAdvisoryLock(ctx context.Context, key string) (func(context.Context) error, bool, error)
}

// RedisLocker holds campaign locks as Redis keys that expire after ttl.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func (l RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	return l.client.AcquireLock(ctx, key, l.ttl)
}

// AdvisoryLocker holds campaign locks as PostgreSQL session advisory locks.
type AdvisoryLocker struct {
	store advisoryLockStore
}

func (l AdvisoryLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	return l.store.TryAdvisoryLock(ctx, key)
}

// NewLocker prefers Redis and falls back to advisory locks when Redis is disabled.
func NewLocker(client *redis.Client, store advisoryLockStore, ttl time.Duration) Locker {
	if client.IsEnabled() {
		return RedisLocker{client: client, ttl: ttl}
	}
	return AdvisoryLocker{store: store}
}

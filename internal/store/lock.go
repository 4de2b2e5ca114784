package store

import (
	"context"
	"fmt"
	"hash/fnv"
)

// AdvisoryLockKey derives a stable advisory lock id from a string key.
func AdvisoryLockKey(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}

// TryAdvisoryLock takes a session scoped pg_try_advisory_lock on a dedicated
// connection. The returned release func unlocks and returns the connection to
// the pool; it is nil when the lock was not acquired.
func (s *Store) TryAdvisoryLock(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get connection: %w", err)
	}
	lockID := AdvisoryLockKey(key)

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", lockID).Scan(&acquired); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("failed to acquire advisory lock: %w", err)
	}
	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		defer conn.Close()
		if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", lockID); err != nil {
			return fmt.Errorf("failed to release advisory lock: %w", err)
		}
		return nil
	}
	return release, true, nil
}

package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"notify-server/internal/clients/redis"
	"notify-server/internal/observability"
	"notify-server/internal/scheduling"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// Result represents the result of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service keeps a one minute sliding window per key in a Redis sorted set.
type Service struct {
	redis  *redis.Client
	clock  scheduling.Clock
	logger *observability.Logger
}

func NewService(redis *redis.Client, clock scheduling.Clock, logger *observability.Logger) *Service {
	if clock == nil {
		clock = scheduling.RealClock{}
	}
	return &Service{
		redis:  redis,
		clock:  clock,
		logger: logger,
	}
}

// Check counts one hit against key. Without Redis every hit is allowed.
func (s *Service) Check(ctx context.Context, key string, limit int) (Result, error) {
	now := s.clock.Now()
	if !s.redis.IsEnabled() || limit <= 0 {
		return Result{Allowed: true, Limit: limit, Remaining: limit, ResetAt: now.Add(window)}, nil
	}

	client := s.redis.GetClient()
	redisKey := "rl:" + key
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	// Remove entries outside the window
	if err := client.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStartMs, 10)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= limit {
		resetAt := now.Add(window)
		oldest, err := client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Members must be unique even when two hits share a millisecond
	member := strconv.FormatInt(nowMs, 10) + ":" + uuid.NewString()
	if err := client.ZAdd(ctx, redisKey, goredis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}
	if err := client.Expire(ctx, redisKey, 2*window).Err(); err != nil {
		s.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "rate_limit_key", Value: key}), "failed to set expiration on rate limit key")
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

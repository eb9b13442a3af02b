// Package ratelimit throttles password attempts with a Redis sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	AttemptsPerMinute int
	AttemptsPerHour   int
}

// LoginLimiter counts attempts per key in one sorted set per window. Each
// attempt is a member scored by its timestamp, so the window slides.
type LoginLimiter struct {
	client *redis.Client
	config Config
	now    func() time.Time
}

func NewLoginLimiter(client *redis.Client, config Config) *LoginLimiter {
	return &LoginLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

type window struct {
	duration time.Duration
	limit    int
}

func (l *LoginLimiter) windows() []window {
	return []window{
		{time.Minute, l.config.AttemptsPerMinute},
		{time.Hour, l.config.AttemptsPerHour},
	}
}

// Allow records an attempt for key and reports whether it is within every
// configured window. A refused attempt is not recorded. retryAfter is the time
// until the oldest counted attempt leaves the exhausted window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()

	active := make([]window, 0, 2)
	for _, w := range l.windows() {
		if w.limit <= 0 {
			continue
		}
		allowed, retryAfter, err := l.checkWindow(ctx, key, w, now)
		if err != nil {
			return false, 0, err
		}
		if !allowed {
			return false, retryAfter, nil
		}
		active = append(active, w)
	}

	if len(active) == 0 {
		return true, 0, nil
	}

	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())
	pipe := l.client.Pipeline()
	for _, w := range active {
		redisKey := l.getKey(key, w.duration)
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMilli()), Member: member})
		pipe.Expire(ctx, redisKey, w.duration+time.Minute)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to record login attempt: %w", err)
	}

	return true, 0, nil
}

// checkWindow drops attempts older than the window and compares the rest to its limit.
func (l *LoginLimiter) checkWindow(ctx context.Context, key string, w window, now time.Time) (bool, time.Duration, error) {
	redisKey := l.getKey(key, w.duration)
	windowStart := now.Add(-w.duration).UnixMilli()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to read login attempts: %w", err)
	}

	if zcard.Val() < int64(w.limit) {
		return true, 0, nil
	}

	retryAfter := w.duration
	if first := oldest.Val(); len(first) > 0 {
		retryAfter = time.Duration(int64(first[0].Score)+w.duration.Milliseconds()-now.UnixMilli()) * time.Millisecond
	}
	if retryAfter < time.Second {
		retryAfter = time.Second
	}
	return false, retryAfter, nil
}

// Reset clears every window for key, typically after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	keys := make([]string, 0, len(l.windows()))
	for _, w := range l.windows() {
		keys = append(keys, l.getKey(key, w.duration))
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func (l *LoginLimiter) getKey(identifier string, window time.Duration) string {
	return fmt.Sprintf("loginlimit:%s:%s", identifier, window.String())
}

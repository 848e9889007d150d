package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client>:<window_index>
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing max requests per window.
func NewRateLimiter(client *redis.Client, max int64, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &RateLimiter{client: client, max: max, window: window}
}

// Allow counts a request for key (typically the client IP) and reports
// whether it is within the window's budget. The window key expires on its
// own, so idle clients cost nothing.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key, time.Now())

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *RateLimiter) key(client string, now time.Time) string {
	secs := int64(l.window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("ratelimit:%s:%d", client, now.Unix()/secs)
}

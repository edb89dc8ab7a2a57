package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetLimiter throttles password-reset requests per email with a Redis
// fixed-window counter. Key format: reset:rl:<email>
type ResetLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewResetLimiter creates a limiter allowing max requests per window.
func NewResetLimiter(client *redis.Client, max int, window time.Duration) *ResetLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = time.Hour
	}
	return &ResetLimiter{client: client, max: int64(max), window: window}
}

// Allow increments the window counter for the email and reports whether the
// request is inside the limit. The first hit in a window sets the expiry.
func (l *ResetLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("reset limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("reset limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *ResetLimiter) key(email string) string {
	return fmt.Sprintf("reset:rl:%s", email)
}

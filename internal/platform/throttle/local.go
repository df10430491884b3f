package throttle

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
)

// LocalLimiter is the in-process fallback used when Redis is not
// configured. It wraps fortify's per-key token bucket.
type LocalLimiter struct {
	rl ratelimit.RateLimiter
}

// NewLocalLimiter creates a LocalLimiter allowing limit attempts per
// window for each key.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		rl: ratelimit.New(&ratelimit.Config{
			Rate:     limit,
			Burst:    limit,
			Interval: window,
		}),
	}
}

// Allow reports whether another attempt is permitted for key. It never
// returns an error; the signature matches the Redis-backed limiter.
func (l *LocalLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.rl.Allow(ctx, key), nil
}

// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/Arcade-K/eduscan-server/internal/config"
	"github.com/Arcade-K/eduscan-server/internal/feature/auth/transport/handler"
	"github.com/Arcade-K/eduscan-server/internal/platform/throttle"
)

// NewLoginLimiter creates a LoginLimiter implementation.
// If Redis is available, it returns a Redis-backed implementation so the
// counter is shared across instances. Otherwise, it falls back to an
// in-process limiter.
func NewLoginLimiter(rdb *redis.Client, cfg config.Throttle) handler.LoginLimiter {
	if rdb != nil {
		return throttle.NewRedisLimiter(rdb, "login", cfg.Limit, cfg.Window)
	}
	return throttle.NewLocalLimiter(cfg.Limit, cfg.Window)
}

package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/smilebright-dental/internal/booking"
	appconfig "github.com/wolfman30/smilebright-dental/internal/config"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when the site
// keeps visitor state in memory. When verify is true, a ping is issued and
// failures are returned.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) (*redis.Client, error) {
	if cfg == nil || !cfg.UsesRedis() {
		return nil, nil
	}
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, fmt.Errorf("bootstrap: REDIS_ADDR is required when SESSION_STORE=redis")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client, nil
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("bootstrap: redis ping: %w", err)
	}
	logger.Info("redis connected", "addr", cfg.RedisAddr, "tls", cfg.RedisTLS)
	return client, nil
}

// BuildBookingDeps picks the session store and dispatch guard: Redis-backed
// when a client is given so replicas share visitor state, in-memory otherwise.
func BuildBookingDeps(cfg *appconfig.Config, redisClient *redis.Client, submitter booking.Submitter, observer booking.Observer, logger *logging.Logger) booking.Deps {
	deps := booking.Deps{
		Submitter: submitter,
		Observer:  observer,
		Logger:    logger,
	}
	if cfg != nil {
		deps.AutoClose = cfg.BookingAutoClose
		if cfg.BookingTimeout > 0 {
			deps.GuardTTL = 2 * cfg.BookingTimeout
		}
	}
	if redisClient != nil {
		ttl := booking.DefaultGuardTTL
		if cfg != nil && cfg.SessionTTL > 0 {
			ttl = cfg.SessionTTL
		}
		deps.Store = booking.NewRedisStore(redisClient, ttl)
		deps.Guard = booking.NewRedisGuard(redisClient)
		return deps
	}
	deps.Store = booking.NewMemoryStore()
	deps.Guard = booking.NewMemoryGuard()
	return deps
}

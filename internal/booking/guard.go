package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Guard keeps a visitor to one outbound submission at a time, across replicas
// when backed by Redis.
type Guard interface {
	// Acquire returns a token and true when the caller may dispatch.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	// Release frees the lease if token still owns it.
	Release(ctx context.Context, key, token string) error
}

type lease struct {
	token   string
	expires time.Time
}

// MemoryGuard is a process-local Guard.
type MemoryGuard struct {
	mu     sync.Mutex
	leases map[string]lease
	now    func() time.Time
}

// NewMemoryGuard creates an empty guard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{leases: make(map[string]lease), now: time.Now}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if l, ok := g.leases[key]; ok && now.Before(l.expires) {
		return "", false, nil
	}
	token := uuid.NewString()
	g.leases[key] = lease{token: token, expires: now.Add(ttl)}
	return token, true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l, ok := g.leases[key]; ok && l.token == token {
		delete(g.leases, key)
	}
	return nil
}

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard leases keys with SET NX PX.
type RedisGuard struct {
	redis *redis.Client
}

// NewRedisGuard wraps a Redis client.
func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{redis: client}
}

func (g *RedisGuard) key(key string) string {
	return "booking:inflight:" + key
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.redis.SetNX(ctx, g.key(key), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis acquire guard: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (g *RedisGuard) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, g.redis, []string{g.key(key)}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release guard: %w", err)
	}
	return nil
}

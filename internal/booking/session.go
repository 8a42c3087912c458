package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// Source names the UI element that opened or closed the booking modal.
type Source string

const (
	SourceCTA          Source = "cta"
	SourceFAB          Source = "fab"
	SourceMenu         Source = "menu"
	SourceServiceCard  Source = "service_card"
	SourceConsultation Source = "consultation"
	SourceModal        Source = "modal"
	SourceAutoClose    Source = "auto_close"
)

// ParseSource maps a form value to a known trigger, defaulting to the CTA.
func ParseSource(raw string) Source {
	switch s := Source(raw); s {
	case SourceCTA, SourceFAB, SourceMenu, SourceServiceCard, SourceConsultation, SourceModal:
		return s
	default:
		return SourceCTA
	}
}

// SessionStore holds the open/closed flag per visitor.
type SessionStore interface {
	Get(ctx context.Context, visitorID string) (bool, error)
	Set(ctx context.Context, visitorID string, open bool) error
	Forget(ctx context.Context, visitorID string) error
}

// Observer receives booking events for metrics.
type Observer interface {
	ObserveSession(action, source string)
	ObserveSubmission(outcome string, seconds float64)
}

// Session is one visitor's booking modal visibility. Any number of triggers
// may open or close it; the last call wins.
type Session struct {
	visitorID string
	store     SessionStore
	observer  Observer
	logger    *logging.Logger
}

// NewSession binds a visitor to the flag store.
func NewSession(visitorID string, store SessionStore, observer Observer, logger *logging.Logger) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{visitorID: visitorID, store: store, observer: observer, logger: logger}
}

// VisitorID is the owning visitor.
func (s *Session) VisitorID() string {
	return s.visitorID
}

// Open shows the booking modal.
func (s *Session) Open(ctx context.Context, source Source) error {
	return s.set(ctx, true, source)
}

// Close hides the booking modal.
func (s *Session) Close(ctx context.Context, source Source) error {
	return s.set(ctx, false, source)
}

// IsOpen reports whether the modal should render.
func (s *Session) IsOpen(ctx context.Context) (bool, error) {
	return s.store.Get(ctx, s.visitorID)
}

func (s *Session) set(ctx context.Context, open bool, source Source) error {
	if err := s.store.Set(ctx, s.visitorID, open); err != nil {
		s.logger.Error("booking session update failed", "visitor_id", s.visitorID, "open", open, "error", err)
		return fmt.Errorf("booking: set session: %w", err)
	}
	action := "close"
	if open {
		action = "open"
	}
	if s.observer != nil {
		s.observer.ObserveSession(action, string(source))
	}
	s.logger.Debug("booking session updated", "visitor_id", s.visitorID, "action", action, "source", source)
	return nil
}

// MemoryStore keeps session flags in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewMemoryStore creates an empty store; unknown visitors are closed.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]bool)}
}

func (m *MemoryStore) Get(_ context.Context, visitorID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[visitorID], nil
}

func (m *MemoryStore) Set(_ context.Context, visitorID string, open bool) error {
	m.mu.Lock()
	m.flags[visitorID] = open
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Forget(_ context.Context, visitorID string) error {
	m.mu.Lock()
	delete(m.flags, visitorID)
	m.mu.Unlock()
	return nil
}

// RedisStore shares session flags between replicas.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore stores flags with the given expiry, refreshed on every write.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) key(visitorID string) string {
	return "booking:session:" + visitorID
}

func (s *RedisStore) Get(ctx context.Context, visitorID string) (bool, error) {
	val, err := s.redis.Get(ctx, s.key(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get session: %w", err)
	}
	return val == "1", nil
}

func (s *RedisStore) Set(ctx context.Context, visitorID string, open bool) error {
	val := "0"
	if open {
		val = "1"
	}
	if err := s.redis.Set(ctx, s.key(visitorID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Forget is a no-op: keys expire through their TTL and another replica may
// still be serving the visitor.
func (s *RedisStore) Forget(context.Context, string) error {
	return nil
}

package booking

import (
	"context"
	"sync"
	"time"
)

// Visitor bundles the booking state owned by one site visitor.
type Visitor struct {
	ID      string
	Session *Session
	Modal   *Modal
}

type registryEntry struct {
	visitor  *Visitor
	lastSeen time.Time
}

// Registry creates and caches visitors' booking state, evicting idle ones.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*registryEntry
	deps     Deps
	idleTTL  time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRegistry starts a registry whose sweeper evicts visitors unseen for idleTTL.
func NewRegistry(deps Deps, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	r := &Registry{
		visitors: make(map[string]*registryEntry),
		deps:     deps.withDefaults(),
		idleTTL:  idleTTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

// Get returns the visitor's booking state, creating it on first use.
func (r *Registry) Get(visitorID string) *Visitor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.visitors[visitorID]; ok {
		e.lastSeen = r.now()
		return e.visitor
	}
	session := NewSession(visitorID, r.deps.Store, r.deps.Observer, r.deps.Logger)
	v := &Visitor{
		ID:      visitorID,
		Session: session,
		Modal:   NewModal(session, r.deps),
	}
	r.visitors[visitorID] = &registryEntry{visitor: v, lastSeen: r.now()}
	return v
}

// Len is the number of cached visitors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep evicts visitors idle since before now-idleTTL, skipping those with a
// submission still running. It returns the number evicted.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	var evicted []*Visitor
	for id, e := range r.visitors {
		if e.lastSeen.After(cutoff) || e.visitor.Modal.busy() {
			continue
		}
		delete(r.visitors, id)
		evicted = append(evicted, e.visitor)
	}
	r.mu.Unlock()

	for _, v := range evicted {
		v.Modal.Teardown()
		if err := r.deps.Store.Forget(context.Background(), v.ID); err != nil {
			r.deps.Logger.Warn("booking session forget failed", "visitor_id", v.ID, "error", err)
		}
	}
	return len(evicted)
}

func (r *Registry) sweepLoop() {
	interval := r.idleTTL / 2
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				r.deps.Logger.Debug("evicted idle visitors", "count", n)
			}
		case <-r.stop:
			return
		}
	}
}

// Close stops the sweeper and cancels every pending auto-close.
func (r *Registry) Close() {
	r.stopOnce.Do(func() {
		close(r.stop)
		r.mu.Lock()
		defer r.mu.Unlock()
		for id, e := range r.visitors {
			e.visitor.Modal.Teardown()
			delete(r.visitors, id)
		}
	})
}

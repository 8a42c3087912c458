// Package booking owns each visitor's booking modal: the shared open/close
// flag, the submission lifecycle and the request sent to the collection endpoint.
package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

const (
	// DefaultAutoClose is how long the success message stays before the modal closes.
	DefaultAutoClose = 3 * time.Second
	// DefaultGuardTTL bounds a dispatch lease if the process dies mid-request.
	DefaultGuardTTL = 30 * time.Second
)

// Deps are the collaborators shared by every visitor's modal.
type Deps struct {
	Store     SessionStore
	Submitter Submitter
	Guard     Guard
	Scheduler Scheduler
	Observer  Observer
	Logger    *logging.Logger
	AutoClose time.Duration
	GuardTTL  time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Store == nil {
		d.Store = NewMemoryStore()
	}
	if d.Guard == nil {
		d.Guard = NewMemoryGuard()
	}
	if d.Scheduler == nil {
		d.Scheduler = TimerScheduler{}
	}
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	if d.AutoClose <= 0 {
		d.AutoClose = DefaultAutoClose
	}
	if d.GuardTTL <= 0 {
		d.GuardTTL = DefaultGuardTTL
	}
	return d
}

// View is a render snapshot of the modal.
type View struct {
	State          State
	Fields         Fields
	SubmitDisabled bool
	Message        string
}

// Modal owns one visitor's submission lifecycle:
// idle -> loading -> success|error, success -> idle after the auto-close delay.
type Modal struct {
	mu      sync.Mutex
	state   State
	fields  Fields
	gen     uint64
	pending Task

	session *Session
	deps    Deps
	logger  *logging.Logger
}

// NewModal creates an idle modal bound to session.
func NewModal(session *Session, deps Deps) *Modal {
	deps = deps.withDefaults()
	return &Modal{
		session: session,
		deps:    deps,
		logger:  deps.Logger.With("visitor_id", session.VisitorID()),
	}
}

// Session is the visibility flag this modal closes.
func (m *Modal) Session() *Session {
	return m.session
}

// State returns the current lifecycle state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// View snapshots state, preserved fields and the derived render flags.
func (m *Modal) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return View{
		State:          m.state,
		Fields:         m.fields,
		SubmitDisabled: m.state.blocksSubmit(),
		Message:        m.state.Message(),
	}
}

// Submit sends the booking once. It is a no-op returning ErrSubmitInFlight
// while loading or after success. Invalid fields never reach the endpoint.
// The outbound request is not tied to ctx cancellation.
func (m *Modal) Submit(ctx context.Context, f Fields) (State, error) {
	f = f.Normalize()

	m.mu.Lock()
	if m.state.blocksSubmit() {
		state := m.state
		m.mu.Unlock()
		return state, ErrSubmitInFlight
	}
	if err := f.Validate(); err != nil {
		m.fields = f
		state := m.state
		m.mu.Unlock()
		return state, err
	}

	key := m.session.VisitorID()
	token, acquired, err := m.deps.Guard.Acquire(ctx, key, m.deps.GuardTTL)
	if err != nil {
		// Guard store outage: fall back to the in-process state check.
		m.logger.Warn("booking guard unavailable", "error", err)
		acquired = true
	}
	if !acquired {
		state := m.state
		m.mu.Unlock()
		return state, ErrSubmitInFlight
	}

	m.stopPendingLocked()
	m.state = StateLoading
	m.fields = f
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	sendCtx := context.WithoutCancel(ctx)
	start := time.Now()
	sendErr := m.deps.Submitter.Submit(sendCtx, f)
	elapsed := time.Since(start)

	if token != "" {
		if err := m.deps.Guard.Release(sendCtx, key, token); err != nil {
			m.logger.Warn("booking guard release failed", "error", err)
		}
	}

	outcome := "success"
	if sendErr != nil {
		outcome = "error"
		var rerr *RemoteError
		if !errors.As(sendErr, &rerr) {
			outcome = "transport_error"
		}
	}
	if m.deps.Observer != nil {
		m.deps.Observer.ObserveSubmission(outcome, elapsed.Seconds())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		// Dismissed while loading; the modal already went back to idle.
		m.logger.Info("booking finished after dismissal", "outcome", outcome, "service", f.Service)
		return m.state, sendErr
	}

	if sendErr != nil {
		m.state = StateError
		m.logger.Warn("booking submission failed", "outcome", outcome, "service", f.Service, "error", sendErr)
		return m.state, sendErr
	}

	m.state = StateSuccess
	m.fields = Fields{}
	m.pending = m.deps.Scheduler.AfterFunc(m.deps.AutoClose, func() {
		m.autoClose(gen)
	})
	m.logger.Info("booking submitted", "service", f.Service, "duration_ms", elapsed.Milliseconds())
	return m.state, nil
}

// autoClose ends the success display. A task that was cancelled or belongs to
// an older submission does nothing.
func (m *Modal) autoClose(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state != StateSuccess {
		m.mu.Unlock()
		return
	}
	m.state = StateIdle
	m.pending = nil
	m.mu.Unlock()

	if err := m.session.Close(context.Background(), SourceAutoClose); err != nil {
		m.logger.Warn("booking auto-close failed", "error", err)
	}
}

// Dismiss handles the close button and backdrop click. Allowed in any state:
// cancels the auto-close, resets to idle, clears the form and closes the session.
func (m *Modal) Dismiss(ctx context.Context) error {
	m.mu.Lock()
	m.stopPendingLocked()
	m.gen++
	m.state = StateIdle
	m.fields = Fields{}
	m.mu.Unlock()

	return m.session.Close(ctx, SourceModal)
}

// Teardown cancels the auto-close without touching the session flag.
func (m *Modal) Teardown() {
	m.mu.Lock()
	m.stopPendingLocked()
	m.gen++
	m.mu.Unlock()
}

// busy reports whether a submission or its success display is still running.
func (m *Modal) busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.blocksSubmit()
}

func (m *Modal) stopPendingLocked() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}

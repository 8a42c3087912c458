package booking

import (
	"context"
	"sync"
	"time"

	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// fakeTask is a scheduled callback fired by the test.
type fakeTask struct {
	f       func()
	delay   time.Duration
	stopped bool
	fired   bool
}

func (t *fakeTask) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// fakeScheduler records tasks instead of starting timers.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTask{f: f, delay: d}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) last() *fakeTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[len(s.tasks)-1]
}

// fire runs the task even if it was stopped, like a timer that had already
// started firing when Stop was called.
func (t *fakeTask) fire() {
	t.fired = true
	t.f()
}

// stubSubmitter returns scripted results and counts calls.
type stubSubmitter struct {
	mu      sync.Mutex
	calls   []Fields
	err     error
	release chan struct{}
	started chan struct{}
}

func (s *stubSubmitter) Submit(_ context.Context, f Fields) error {
	s.mu.Lock()
	s.calls = append(s.calls, f)
	release, started, err := s.release, s.started, s.err
	s.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return err
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// recordingObserver captures booking events.
type recordingObserver struct {
	mu          sync.Mutex
	sessions    []string
	submissions []string
}

func (o *recordingObserver) ObserveSession(action, source string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sessions = append(o.sessions, action+":"+source)
}

func (o *recordingObserver) ObserveSubmission(outcome string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.submissions = append(o.submissions, outcome)
}

func validFields() Fields {
	return Fields{Name: "Asha Verma", Phone: "+91 98765 43210", Service: "Root Canal"}
}

func testLogger() *logging.Logger {
	return logging.New("error")
}

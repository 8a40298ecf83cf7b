// Package guard gates protected views behind a session check.
//
// A Guard starts pending, consults the session gate once and settles on
// denied or granted for the rest of its life. Callers that need a fresh
// decision create a new Guard.
package guard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sitecms/internal/client/session"
)

type State int

const (
	StatePending State = iota
	StateDenied
	StateGranted
)

func (s State) String() string {
	switch s {
	case StateDenied:
		return "denied"
	case StateGranted:
		return "granted"
	default:
		return "pending"
	}
}

// Checker is satisfied by *session.Gate.
type Checker interface {
	CheckSession(ctx context.Context) (session.Status, error)
}

// Views are rendered by Mount. Nil views are skipped.
type Views struct {
	Pending func()
	Denied  func()
	Granted func()
}

type Guard struct {
	checker Checker
	once    sync.Once

	mu     sync.RWMutex
	state  State
	status session.Status
	err    error
}

func New(checker Checker) *Guard {
	return &Guard{checker: checker}
}

// Mount renders Pending, runs the session check and then renders exactly one
// of Granted (authenticated or degraded) or Denied. Only the first call
// renders anything; every call returns the resolved state.
func (g *Guard) Mount(ctx context.Context, v Views) State {
	g.once.Do(func() {
		render(v.Pending)

		status, err := g.checker.CheckSession(ctx)
		state := StateDenied
		if err == nil && (status == session.StatusAuthenticated || status == session.StatusDegraded) {
			state = StateGranted
		}

		g.mu.Lock()
		g.state, g.status, g.err = state, status, err
		g.mu.Unlock()

		if state == StateGranted {
			render(v.Granted)
		} else {
			render(v.Denied)
		}
	})
	return g.State()
}

func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Status is the session status the guard resolved with.
func (g *Guard) Status() session.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// Err is the session gate error that led to a denial, if any.
func (g *Guard) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}

func render(f func()) {
	if f != nil {
		f()
	}
}

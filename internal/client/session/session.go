// Package session decides whether the locally held token still opens an
// admin session.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/client/services"
	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
	"github.com/dmitrijs2005/sitecms/internal/logging"
)

type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticated
	// StatusDegraded means a token is present but the API could not be
	// reached to confirm it.
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusDegraded:
		return "degraded"
	default:
		return "unauthenticated"
	}
}

// Prober performs the authorized liveness call.
type Prober interface {
	Do(ctx context.Context, r client.Request, out any) error
}

// Gate checks the session on every call. Nothing is cached.
type Gate struct {
	store         tokenstore.Store
	api           Prober
	allowDegraded bool
	log           logging.Logger
}

type Option func(*Gate)

// WithAllowDegraded controls whether an unreachable API still grants access
// to a holder of a local token. It is on by default.
func WithAllowDegraded(allow bool) Option {
	return func(g *Gate) { g.allowDegraded = allow }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

func NewGate(store tokenstore.Store, api Prober, opts ...Option) *Gate {
	g := &Gate{store: store, api: api, allowDegraded: true, log: logging.NewNop()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// CheckSession reports the session status.
//
// Without a local token no request is made. A rejected token is cleared.
// A network failure yields StatusDegraded when allowed, otherwise
// StatusUnauthenticated with the error. A failure caused by ctx itself
// being done is never degraded. Any other failure yields
// StatusUnauthenticated with the error and keeps the token.
func (g *Gate) CheckSession(ctx context.Context) (Status, error) {
	if !g.store.Has(ctx) {
		return StatusUnauthenticated, nil
	}

	err := g.api.Do(ctx, client.Request{Method: http.MethodGet, Path: services.StatsPath, Auth: true}, nil)
	switch {
	case err == nil:
		return StatusAuthenticated, nil
	case errors.Is(err, client.ErrAuthentication):
		if cerr := g.store.Clear(ctx); cerr != nil {
			g.log.Warn(ctx, "failed to clear rejected token", "error", cerr)
		}
		return StatusUnauthenticated, nil
	case ctx.Err() != nil:
		return StatusUnauthenticated, fmt.Errorf("verify session: %w", err)
	case errors.Is(err, client.ErrNetwork):
		if g.allowDegraded {
			g.log.Warn(ctx, "session not verified, api unreachable", "error", err)
			return StatusDegraded, nil
		}
		return StatusUnauthenticated, fmt.Errorf("verify session: %w", err)
	default:
		return StatusUnauthenticated, fmt.Errorf("verify session: %w", err)
	}
}

// Package auth decides which screens are reachable from the current
// session and mediates the login/logout transitions.
package auth

import (
	"context"

	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/session"
)

// State is the gate's view of the session.
type State int

const (
	// StateInitializing means the persisted session has not been loaded
	// yet. A route guard must render a neutral waiting response in this
	// state, never a redirect.
	StateInitializing State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Gate derives authentication and authorization answers from the session
// store. It starts in StateInitializing and leaves it exactly once, when
// the store settles: through Resolve, or through an earlier Login or
// Logout. The gate keeps no state of its own, so there is no flag to fall
// out of sync with the store.
type Gate struct {
	store *session.Store
}

// NewGate creates a Gate over the given session store.
func NewGate(store *session.Store) *Gate {
	return &Gate{store: store}
}

// Resolve loads the persisted session and moves the gate out of
// StateInitializing. It is a no-op once the session has settled, so a
// Login or Logout racing the startup load is never overwritten.
func (g *Gate) Resolve(ctx context.Context) error {
	return g.store.Load(ctx)
}

// Login stores the token and identity and moves the gate to
// StateAuthenticated. The network exchange that produced both is the
// caller's responsibility.
func (g *Gate) Login(ctx context.Context, token string, id domain.Identity) error {
	return g.store.Save(ctx, token, id)
}

// Logout clears the session and moves the gate to StateAnonymous.
// Logging out while already anonymous is a harmless no-op.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Clear(ctx)
}

// Current returns the gate state derived from the session store.
func (g *Gate) Current() State {
	if !g.store.Loaded() {
		return StateInitializing
	}
	if _, id := g.store.Read(); id != nil {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Identity returns the authenticated identity, or nil.
func (g *Gate) Identity() *domain.Identity {
	_, id := g.store.Read()
	return id
}

// IsAuthenticated reports whether a session is present.
func (g *Gate) IsAuthenticated() bool {
	return g.Current() == StateAuthenticated
}

// IsAuthorized reports whether a session is present and its identity
// carries the required role.
func (g *Gate) IsAuthorized(role string) bool {
	if g.Current() != StateAuthenticated {
		return false
	}
	id := g.Identity()
	return id != nil && id.Role == role
}

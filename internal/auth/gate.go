package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"staykit/internal/pkg/clock"
	"staykit/internal/pkg/errs"
	"staykit/internal/pkg/jwt"
	"staykit/internal/transport"
)

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrInvalidToken = errors.New("invalid access token")
)

type State string

const (
	// StateUnresolved: the persisted identity has not finished loading.
	StateUnresolved State = "unresolved"
	// StateUnauthenticated: no identity exists.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticatedNoProfile: an identity exists but its profile has
	// not been fetched yet.
	StateAuthenticatedNoProfile State = "authenticated_no_profile"
	// StateReady: identity and profile are both present.
	StateReady State = "ready"
)

// RenderState is what a screen may show for a given gate state.
type RenderState string

const (
	RenderBusy      RenderState = "busy"
	RenderPublic    RenderState = "public"
	RenderProtected RenderState = "protected"
)

// ProfileLoader fetches the profile for a user id. The production
// implementation is the profile query, so the result is a cache entry.
type ProfileLoader interface {
	LoadProfile(ctx context.Context, userID string) (*Profile, error)
}

// Gate combines the persisted identity with a freshly loaded profile to
// decide what a caller may render. Protected content is only reachable in
// StateReady; the busy states keep an unauthorized flash from ever being
// visible while the profile is still loading.
type Gate struct {
	mu         sync.RWMutex
	state      State
	identity   *Identity
	storage    Storage
	storageKey string
	profiles   ProfileLoader
	onSignOut  func(userID string)
	clock      clock.Clock
	logger     *slog.Logger
	listeners  map[int]func(State)
	nextSubID  int
}

// NewGate starts in StateUnresolved; call Restore before rendering
// anything gated. onSignOut runs with the departing user id whenever an
// identity is cleared, so the profile cache entry can be invalidated.
func NewGate(
	storage Storage,
	storageKey string,
	profiles ProfileLoader,
	onSignOut func(userID string),
	clk clock.Clock,
	logger *slog.Logger,
) *Gate {
	return &Gate{
		state:      StateUnresolved,
		storage:    storage,
		storageKey: storageKey,
		profiles:   profiles,
		onSignOut:  onSignOut,
		clock:      clk,
		logger:     logger,
		listeners:  make(map[int]func(State)),
	}
}

func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Render maps the gate state to what the caller may show. Unresolved and
// AuthenticatedNoProfile are indistinguishable busy states on purpose.
func (g *Gate) Render() RenderState {
	switch g.State() {
	case StateUnauthenticated:
		return RenderPublic
	case StateReady:
		return RenderProtected
	default:
		return RenderBusy
	}
}

func (g *Gate) Identity() (Identity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.identity == nil {
		return Identity{}, false
	}
	return *g.identity, true
}

// Token returns the current access token; wired into the transport as its
// bearer token source.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.identity == nil {
		return ""
	}
	return g.identity.AccessToken
}

// Restore loads the persisted identity and, when one exists, resolves its
// profile. The gate leaves StateUnresolved exactly once, here.
func (g *Gate) Restore(ctx context.Context) error {
	value, ok, err := g.storage.Load(g.storageKey)
	if err != nil {
		g.setState(StateUnauthenticated, nil)
		return errs.Wrap(err, "failed to load persisted identity")
	}
	if !ok {
		g.setState(StateUnauthenticated, nil)
		return nil
	}

	claims, err := jwt.Decode(value, g.clock.Now())
	if err != nil {
		// A malformed or expired token is as good as no identity.
		g.logger.Warn("discarding persisted token", "error", err)
		_ = g.storage.Remove(g.storageKey)
		g.setState(StateUnauthenticated, nil)
		return nil
	}

	g.setState(StateAuthenticatedNoProfile, &Identity{
		UserID:      claims.UserID,
		AccessToken: value,
	})
	return g.ResolveProfile(ctx)
}

// SignIn installs a freshly issued token, persists it, and resolves the
// profile for the new identity.
func (g *Gate) SignIn(ctx context.Context, token string) error {
	claims, err := jwt.Decode(token, g.clock.Now())
	if err != nil {
		return errs.Mark(errs.Wrap(err, "rejecting sign-in token"), ErrInvalidToken)
	}
	if err := g.storage.Save(g.storageKey, token); err != nil {
		return errs.Wrap(err, "failed to persist identity")
	}

	g.setState(StateAuthenticatedNoProfile, &Identity{
		UserID:      claims.UserID,
		AccessToken: token,
	})
	return g.ResolveProfile(ctx)
}

// ResolveProfile fetches the profile for the current identity. An
// authorization failure means the session itself is dead: the identity is
// cleared and the gate drops to Unauthenticated. Any other failure keeps
// the gate in its busy state so the caller can retry.
func (g *Gate) ResolveProfile(ctx context.Context) error {
	g.mu.RLock()
	identity := g.identity
	g.mu.RUnlock()
	if identity == nil {
		return ErrNotSignedIn
	}

	profile, err := g.profiles.LoadProfile(ctx, identity.UserID)
	if err != nil {
		if transport.IsAuthExpired(err) {
			g.logger.Info("session invalidated by profile fetch", "user_id", identity.UserID)
			g.clearIdentity(identity.UserID)
			return err
		}
		return err
	}

	g.mu.Lock()
	if g.identity == nil || g.identity.UserID != identity.UserID {
		// Signed out (or switched) while the fetch was in flight.
		g.mu.Unlock()
		return ErrNotSignedIn
	}
	g.identity.Profile = profile
	g.mu.Unlock()
	g.setState(StateReady, nil)
	return nil
}

// SignOut clears the identity and notifies the sign-out hook so the
// departed user's profile cache entry gets invalidated.
func (g *Gate) SignOut() {
	g.mu.RLock()
	identity := g.identity
	g.mu.RUnlock()
	if identity == nil {
		return
	}
	g.clearIdentity(identity.UserID)
}

// Subscribe registers a listener for committed state transitions.
func (g *Gate) Subscribe(fn func(State)) func() {
	g.mu.Lock()
	id := g.nextSubID
	g.nextSubID++
	g.listeners[id] = fn
	g.mu.Unlock()
	return func() {
		g.mu.Lock()
		delete(g.listeners, id)
		g.mu.Unlock()
	}
}

func (g *Gate) clearIdentity(userID string) {
	if err := g.storage.Remove(g.storageKey); err != nil {
		g.logger.Warn("failed to remove persisted identity", "error", err)
	}
	g.setState(StateUnauthenticated, nil)
	if g.onSignOut != nil {
		g.onSignOut(userID)
	}
}

// setState commits a transition. A nil identity is only applied when the
// target state cannot carry one.
func (g *Gate) setState(state State, identity *Identity) {
	g.mu.Lock()
	changed := g.state != state
	g.state = state
	if identity != nil {
		g.identity = identity
	} else if state == StateUnauthenticated {
		g.identity = nil
	}
	fns := make([]func(State), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range fns {
		fn(state)
	}
}

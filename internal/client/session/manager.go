package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/anushishehara/leaveport/internal/logging"
)

// Authenticator performs the credential exchange and the durable logout.
// The concrete implementation lives in the services package. Persisting a
// successful login is not its job: the Manager commits the record itself,
// after confirming the attempt has not been superseded.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context) error
}

// Manager is the single in-memory holder of the current session. It is an
// explicitly owned handle passed to whoever needs it (usually via the
// context, see NewContext), not a package-level global.
//
// The in-memory copy is loaded from the Store once at construction and
// mutated only by Login and Logout. The Manager also owns durable
// persistence: the store is written only together with the in-memory copy,
// so the two cannot disagree. Role flags are recomputed from the roles
// slice on every call; they are never cached, so they cannot drift from
// the session they describe.
type Manager struct {
	store Store
	auth  Authenticator
	log   logging.Logger

	mu      sync.RWMutex
	current *Session
	attempt uuid.UUID // latest in-flight login attempt
}

// NewManager builds a Manager and primes it from the store. It reads the
// store exactly once; later store mutations by other processes are not
// observed.
func NewManager(ctx context.Context, store Store, auth Authenticator, log logging.Logger) (*Manager, error) {
	s, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, auth: auth, log: log, current: s}, nil
}

// Current returns the in-memory session, or nil when logged out.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether a session is held.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// IsAdmin reports whether the current session grants administrator access.
func (m *Manager) IsAdmin() bool {
	s := m.Current()
	return s != nil && IsAdmin(s.Roles)
}

// IsManager reports whether the current session grants manager capability.
func (m *Manager) IsManager() bool {
	s := m.Current()
	return s != nil && IsManager(s.Roles)
}

// SessionToken returns the scheme and bearer credential for outbound
// requests, or ok=false when logged out.
func (m *Manager) SessionToken() (scheme, token string, ok bool) {
	s := m.Current()
	if s == nil {
		return "", "", false
	}
	scheme = s.Type
	if scheme == "" {
		scheme = "Bearer"
	}
	return scheme, s.Token, true
}

// Login exchanges credentials via the Authenticator and, on success, makes
// the returned session current and persists it.
//
// Every call is tagged with a fresh attempt ID and only the most recent
// attempt may mutate session state when it resolves. A login that resolves
// after a newer Login or a Logout has superseded it is discarded with a
// warning instead of clobbering the newer state. The store write happens
// behind the same check, so a discarded result never reaches disk either.
//
// On failure the in-memory session and the store are left untouched and
// the error is returned for the caller to display.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	m.mu.Lock()
	id := uuid.New()
	m.attempt = id
	m.mu.Unlock()

	s, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attempt != id {
		m.log.Warn(ctx, "discarding superseded login result", "username", username)
		return nil
	}
	if s.Token != "" {
		if err := m.store.Save(ctx, s); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}
	m.current = s
	return nil
}

// Logout clears the durable record via the Authenticator, then the
// in-memory copy. It also invalidates any login still in flight.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = nil
	m.attempt = uuid.Nil
	m.mu.Unlock()
	return nil
}

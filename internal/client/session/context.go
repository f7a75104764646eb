package session

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying m. The application attaches the
// manager once, at the top of the command loop; everything underneath
// retrieves it with FromContext.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the Manager attached to ctx.
//
// It panics when none is attached. Every command runs under a context that
// carries the manager, so a missing one is a wiring bug; panicking surfaces
// it immediately instead of letting the caller misread it as "logged out".
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(ctxKey{}).(*Manager)
	if !ok {
		panic("session: FromContext called on a context without a session manager")
	}
	return m
}

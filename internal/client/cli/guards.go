package cli

import (
	"context"

	"github.com/anushishehara/leaveport/internal/client/session"
)

// Guard is the access requirement of a route.
type Guard int

const (
	// GuardNone marks public routes (login, signup).
	GuardNone Guard = iota
	// GuardAuthenticated requires a session.
	GuardAuthenticated
	// GuardManager requires the manager capability; administrators
	// qualify too.
	GuardManager
	// GuardAdmin requires the administrator role.
	GuardAdmin
)

// Decision is the outcome of evaluating a guard for one dispatch.
type Decision int

const (
	// Allow renders the guarded view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated user to the login view.
	// The guarded command never runs, so there is nothing to navigate
	// back to.
	RedirectLogin
	// RedirectDashboard sends an authenticated user lacking the required
	// role to the default landing view.
	RedirectDashboard
)

// Evaluate applies the guard to the session state carried by ctx. Guards
// are stateless: the decision is recomputed from the session on every
// dispatch, never remembered between commands.
func (g Guard) Evaluate(ctx context.Context) Decision {
	if g == GuardNone {
		return Allow
	}

	m := session.FromContext(ctx)
	if !m.IsAuthenticated() {
		return RedirectLogin
	}
	switch g {
	case GuardAdmin:
		if !m.IsAdmin() {
			return RedirectDashboard
		}
	case GuardManager:
		if !m.IsManager() {
			return RedirectDashboard
		}
	}
	return Allow
}

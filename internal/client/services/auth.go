// Package services contains the application services of the leave portal
// client. This file defines the authentication service: registration,
// credential exchange, and durable session housekeeping.
package services

import (
	"context"

	"github.com/anushishehara/leaveport/internal/client/api"
	"github.com/anushishehara/leaveport/internal/client/session"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Register: create a new account on the server; backend failures are
//     propagated unchanged, never retried.
//   - Login: exchange credentials for a session and return the response
//     body as-is. Durable persistence is not performed here: the session
//     manager commits the record, and only for the newest login attempt,
//     so a superseded exchange never reaches the store.
//   - Logout: remove the durable session record. Purely local; the server
//     keeps no revocable state for this client.
type AuthService interface {
	Register(ctx context.Context, req api.SignupRequest) error
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote Client and
// the local session store.
type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, req api.SignupRequest) error {
	return a.client.SignUp(ctx, req)
}

func (a *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	return a.client.SignIn(ctx, api.SigninRequest{Username: username, Password: password})
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

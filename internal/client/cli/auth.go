package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/anushishehara/leaveport/internal/client/api"
	"github.com/anushishehara/leaveport/internal/client/session"
)

// login prompts for credentials and performs the exchange through the
// session manager. A rejected credential is displayed inline and never
// propagated further; the in-memory session stays as it was.
func (a *App) login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", api.DisplayMessage(err))
		return nil
	}
	if s := a.sessions.Current(); s != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", s.Username)
	}
	return nil
}

// signup collects the registration form and submits it. Backend validation
// failures (duplicate username, bad email) come back as one message and are
// shown inline.
func (a *App) signup(ctx context.Context, _ []string) error {
	req := api.SignupRequest{}

	var err error
	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	req.Password = string(password)
	if req.Department, err = getSimpleText(a.reader, "Department", a.out); err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, fmt.Sprintf("Role [%s]", session.RoleUser), a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = session.RoleUser
	}
	req.Role = role

	if err := a.auth.Register(ctx, req); err != nil {
		fmt.Fprintln(a.out, "Signup failed:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	s := a.sessions.Current()
	fmt.Fprintf(a.out, "%s <%s> roles=%s admin=%t manager=%t\n",
		s.Username, s.Email, strings.Join(s.Roles, ","),
		a.sessions.IsAdmin(), a.sessions.IsManager())
	return nil
}

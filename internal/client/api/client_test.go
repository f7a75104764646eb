package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushishehara/leaveport/internal/client/session"
	"github.com/anushishehara/leaveport/internal/logging"
)

func noToken() (string, string, bool) { return "", "", false }

// recordLogger captures warn and error messages for assertions.
type recordLogger struct {
	msgs []string
}

func (l *recordLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (l *recordLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (l *recordLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.msgs = append(l.msgs, msg)
}
func (l *recordLogger) Error(ctx context.Context, msg string, args ...any) {
	l.msgs = append(l.msgs, msg)
}
func (l *recordLogger) With(args ...any) logging.Logger { return l }

func bearer(token string) TokenSource {
	return func() (string, string, bool) { return "Bearer", token, true }
}

func newTestClient(t *testing.T, tokens TokenSource, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api", tokens, logging.NewNop())
}

func TestSignIn_Success(t *testing.T) {
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req SigninRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, SigninRequest{Username: "alice", Password: "pw"}, req)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"token":"abc123","type":"Bearer","id":1,"username":"alice","email":"a@x.com","roles":["ROLE_ADMIN"]}`)
	})

	s, err := c.SignIn(context.Background(), SigninRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, &session.Session{
		Token:    "abc123",
		Type:     "Bearer",
		ID:       1,
		Username: "alice",
		Email:    "a@x.com",
		Roles:    []string{session.RoleAdmin},
	}, s)
}

func TestSignIn_BadCredentials(t *testing.T) {
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})

	s, err := c.SignIn(context.Background(), SigninRequest{Username: "alice", Password: "wrong"})
	assert.Nil(t, s)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Bad credentials", apiErr.Message)
	assert.Equal(t, "Bad credentials", err.Error())
}

func TestErrorWithoutMessageFallsBack(t *testing.T) {
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "boom")
	})

	err := c.SignUp(context.Background(), SignupRequest{Username: "bob"})
	require.Error(t, err)
	assert.Equal(t, "request failed: Internal Server Error", err.Error())
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestSignUp_PostsBody(t *testing.T) {
	var got SignupRequest
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	want := SignupRequest{
		Username:   "bob",
		FullName:   "Bob Builder",
		Email:      "b@x.com",
		Password:   "pw",
		Department: "IT",
		Role:       session.RoleUser,
	}
	require.NoError(t, c.SignUp(context.Background(), want))
	assert.Equal(t, want, got)
}

func TestAuthorizedRequestsCarryBearer(t *testing.T) {
	c := newTestClient(t, bearer("abc123"), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, err := c.ListLeaveTypes(context.Background())
	require.NoError(t, err)
}

func TestAuthorizedRequestWithoutSessionOmitsHeader(t *testing.T) {
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, err := c.MyLeaves(context.Background())
	require.NoError(t, err)
}

func TestResourcePathsAndMethods(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, bearer("abc"), func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	})
	ctx := context.Background()

	require.NoError(t, c.ProcessLeave(ctx, 7, ProcessLeaveRequest{Status: "APPROVED", Remarks: "ok"}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/leaves/7/process", gotPath)

	require.NoError(t, c.CancelLeave(ctx, 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/leaves/9/cancel", gotPath)

	require.NoError(t, c.UpdateUser(ctx, 4, UpdateUserRequest{Role: "ROLE_MANAGER"}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/users/4", gotPath)

	require.NoError(t, c.DeleteUser(ctx, 4))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/users/4", gotPath)

	_, err := c.AdminDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/statistics/admin-dashboard", gotPath)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	log := &recordLogger{}
	c := NewHTTPClient(srv.URL+"/api", noToken, log)
	_, err := c.SignIn(context.Background(), SigninRequest{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, log.msgs, "request failed")
}

func TestMalformedResponseBodyIsLogged(t *testing.T) {
	c := newTestClient(t, noToken, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"token":`)
	})
	log := &recordLogger{}
	c.log = log

	_, err := c.SignIn(context.Background(), SigninRequest{Username: "alice", Password: "pw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding POST /auth/signin response")
	assert.Contains(t, log.msgs, "malformed response body")
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "Bad credentials", DisplayMessage(&APIError{Status: 401, Message: "Bad credentials"}))
	assert.Equal(t, "request failed: Not Found", DisplayMessage(&APIError{Status: 404}))
	assert.Equal(t, "server unavailable", DisplayMessage(ErrUnavailable))
	assert.Equal(t, fmt.Sprintf("%v: dial refused", ErrUnavailable),
		DisplayMessage(fmt.Errorf("%w: dial refused", ErrUnavailable)))
}

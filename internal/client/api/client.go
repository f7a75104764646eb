// Package api is the HTTP/JSON gateway to the leave portal backend. It
// mirrors the REST contract one method per endpoint and maps non-2xx
// responses into *APIError. It performs no retries and imposes no timeouts
// of its own; cancellation belongs to the caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/anushishehara/leaveport/internal/client/models"
	"github.com/anushishehara/leaveport/internal/client/session"
	"github.com/anushishehara/leaveport/internal/logging"
)

// TokenSource supplies the credential attached to authorized requests.
// ok=false means no session is held and the Authorization header is
// omitted; the backend answers 401 and that error surfaces once.
type TokenSource func() (scheme, token string, ok bool)

// Client is the full backend surface the application consumes.
type Client interface {
	SignUp(ctx context.Context, req SignupRequest) error
	SignIn(ctx context.Context, req SigninRequest) (*session.Session, error)

	ListLeaveTypes(ctx context.Context) ([]models.LeaveType, error)
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) error
	MyLeaveBalances(ctx context.Context) ([]models.LeaveBalance, error)
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) error
	MyLeaves(ctx context.Context) ([]models.LeaveRequest, error)
	PendingLeaves(ctx context.Context) ([]models.LeaveRequest, error)
	AllLeaves(ctx context.Context) ([]models.LeaveRequest, error)
	ProcessLeave(ctx context.Context, id int64, req ProcessLeaveRequest) error
	CancelLeave(ctx context.Context, id int64) error
	AdminDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// withAuth marks requests that carry the bearer credential. Only the two
// /auth endpoints go out bare.
const (
	withAuth = true
	noAuth   = false
)

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authorized bool) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		if scheme, token, ok := c.tokens(); ok {
			req.Header.Set("Authorization", scheme+" "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := decodeError(resp)
		c.log.Debug(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Error(ctx, "malformed response body", "method", method, "path", path, "error", err)
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// decodeError builds an *APIError from a non-2xx response. The backend's
// error payload optionally carries a message field; anything else is
// ignored and the status alone is kept.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}

func (c *HTTPClient) SignUp(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil, noAuth)
}

func (c *HTTPClient) SignIn(ctx context.Context, req SigninRequest) (*session.Session, error) {
	var s session.Session
	if err := c.do(ctx, http.MethodPost, "/auth/signin", req, &s, noAuth); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListLeaveTypes(ctx context.Context) ([]models.LeaveType, error) {
	var types []models.LeaveType
	if err := c.do(ctx, http.MethodGet, "/leave-types", nil, &types, withAuth); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *HTTPClient) CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) error {
	return c.do(ctx, http.MethodPost, "/leave-types", req, nil, withAuth)
}

func (c *HTTPClient) MyLeaveBalances(ctx context.Context) ([]models.LeaveBalance, error) {
	var balances []models.LeaveBalance
	if err := c.do(ctx, http.MethodGet, "/leave-balances/my-balances", nil, &balances, withAuth); err != nil {
		return nil, err
	}
	return balances, nil
}

func (c *HTTPClient) ApplyLeave(ctx context.Context, req ApplyLeaveRequest) error {
	return c.do(ctx, http.MethodPost, "/leaves/apply", req, nil, withAuth)
}

func (c *HTTPClient) MyLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.do(ctx, http.MethodGet, "/leaves/my-leaves", nil, &leaves, withAuth); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (c *HTTPClient) PendingLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.do(ctx, http.MethodGet, "/leaves/pending", nil, &leaves, withAuth); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (c *HTTPClient) AllLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.do(ctx, http.MethodGet, "/leaves", nil, &leaves, withAuth); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (c *HTTPClient) ProcessLeave(ctx context.Context, id int64, req ProcessLeaveRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/leaves/%d/process", id), req, nil, withAuth)
}

func (c *HTTPClient) CancelLeave(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/leaves/%d/cancel", id), nil, nil, withAuth)
}

func (c *HTTPClient) AdminDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	var stats models.AdminDashboardStats
	if err := c.do(ctx, http.MethodGet, "/statistics/admin-dashboard", nil, &stats, withAuth); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users, withAuth); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), req, nil, withAuth)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, withAuth)
}

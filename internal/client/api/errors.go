package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any 401 response via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the backend. Message carries the
// error payload's "message" field when the backend supplied one.
type APIError struct {
	Status  int
	Message string
}

// Error prefers the backend's own message and falls back to a generic
// status description.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("request failed: %s", text)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// DisplayMessage extracts the text shown to the user for a failed call:
// the backend's message field when present, else the error's own text.
func DisplayMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

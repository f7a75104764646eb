package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushishehara/leaveport/internal/logging"
)

func TestFromContext_ReturnsAttachedManager(t *testing.T) {
	m, err := NewManager(context.Background(), &fakeStore{}, &fakeAuth{}, logging.NewNop())
	require.NoError(t, err)

	ctx := NewContext(context.Background(), m)
	assert.Same(t, m, FromContext(ctx))
}

func TestFromContext_PanicsWithoutManager(t *testing.T) {
	// A context without a manager is a wiring bug and must not read as
	// "logged out".
	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}

package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewZapLogger_InvalidLevel(t *testing.T) {
	log, err := NewZapLogger("verbose")
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestWithReturnsLogger(t *testing.T) {
	log := NewNop()

	child := log.With("component", "test")
	require.NotNil(t, child)

	// Must not panic on any level.
	ctx := context.Background()
	child.Debug(ctx, "debug")
	child.Info(ctx, "info")
	child.Warn(ctx, "warn")
	child.Error(ctx, "error")
}

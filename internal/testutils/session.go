package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
	"github.com/KirkDiggler/rpg-room-mirror/internal/session"
)

// NewTestSession creates a session on the default settings and the test
// catalog
func NewTestSession(t *testing.T) *session.Context {
	return NewTestSessionWithSettings(t, config.Default())
}

// NewTestSessionWithSettings creates a session with custom settings
func NewTestSessionWithSettings(t *testing.T, settings config.Config) *session.Context {
	t.Helper()

	e, err := engine.New(&engine.Config{MaxStackHeight: settings.MaxStackHeight})
	require.NoError(t, err)

	sess, err := session.New(&session.Config{
		Settings: settings,
		Catalog:  TestCatalog(),
		Engine:   e,
	})
	require.NoError(t, err)
	return sess
}

// Ptr returns a pointer to v, for building partial DTOs
func Ptr[T any](v T) *T {
	return &v
}

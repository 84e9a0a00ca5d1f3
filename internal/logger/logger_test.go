package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_EmitsRoleField(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)

	// the role field is baked into the logger context; a child logger
	// inherits it without re-configuration
	child := l.GetChildLogger()
	require.NotNil(t, child)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic and must be disabled at every level
	l.Info().Msg("discarded")
	l.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	l := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

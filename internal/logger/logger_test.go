package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Logging on a nop logger must be safe and side-effect free.
	assert.NotPanics(t, func() {
		log.Info().Str("key", "value").Msg("discarded")
		log.Error().Msg("also discarded")
	})
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	log := FromContext(context.Background())

	// zerolog falls back to its global logger, so never nil.
	require.NotNil(t, log)
}

func TestFromContext_RoundTrip(t *testing.T) {
	attached := zerolog.Nop()
	ctx := attached.WithContext(context.Background())

	log := FromContext(ctx)
	require.NotNil(t, log)
	assert.Equal(t, attached.GetLevel(), log.GetLevel())
}

func TestFromRequest_NotNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	log := FromRequest(r)
	require.NotNil(t, log)
}

package mcp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTranscriptionService)
	})

	t.Run("missing feature service returns error", func(t *testing.T) {
		ports := newTestPorts()
		ports.Features = nil
		server, err := NewServer(ports)
		assert.ErrorIs(t, err, ErrMissingFeatureService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingTranscriptionService)
	})

	t.Run("inventory and settings are optional", func(t *testing.T) {
		ports := newTestPorts()
		ports.Inventory = nil
		ports.Settings = nil
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, newTestPorts().Validate())
	})
}

func TestServer_RateLimitFromSettings(t *testing.T) {
	t.Run("defaults without settings", func(t *testing.T) {
		ports := newTestPorts()
		ports.Settings = nil
		server, err := NewServer(ports)
		require.NoError(t, err)

		assert.Equal(t, RateLimitConfig{RequestsPerSecond: 10, BurstSize: 20}, server.RateLimiter().Config())
	})

	t.Run("reads settings", func(t *testing.T) {
		settings := domain.DefaultAppSettings()
		settings.MCP = domain.MCPSettings{RateLimit: 2.5, Burst: 3}
		ports := newTestPorts()
		ports.Settings = &mockSettingsService{settings: &settings}
		server, err := NewServer(ports)
		require.NoError(t, err)

		assert.Equal(t, RateLimitConfig{RequestsPerSecond: 2.5, BurstSize: 3}, server.RateLimiter().Config())
	})

	t.Run("settings error falls back to defaults", func(t *testing.T) {
		ports := newTestPorts()
		ports.Settings = &mockSettingsService{err: errors.New("config broken")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		assert.Equal(t, 10.0, server.RateLimiter().Config().RequestsPerSecond)
	})
}

func TestServer_ReloadSettings(t *testing.T) {
	ports := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	require.NoError(t, ports.Settings.SetMCPRateLimit(1, 1))
	server.ReloadSettings()

	assert.Equal(t, RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}, server.RateLimiter().Config())
}

func TestServer_Handler_RateLimited(t *testing.T) {
	ports := newTestPorts()
	require.NoError(t, ports.Settings.SetMCPRateLimit(0.001, 1))
	server, err := NewServer(ports)
	require.NoError(t, err)

	handler := server.Handler()

	// The first request spends the only token; what the MCP handler does
	// with it does not matter here.
	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, http.StatusTooManyRequests, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

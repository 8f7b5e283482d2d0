package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for phonet.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	limiter *RateLimiter
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "phonet",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}
	s.limiter = NewRateLimiter(s.rateLimitConfig())

	s.registerTools()
	s.registerResources()

	return s, nil
}

// rateLimitConfig reads the HTTP rate limit from settings, falling back
// to the defaults.
func (s *Server) rateLimitConfig() RateLimitConfig {
	mcpSettings := domain.DefaultAppSettings().MCP
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			logger.Warn("Reading MCP settings: %v", err)
		} else {
			mcpSettings = settings.MCP
		}
	}
	return RateLimitConfig{
		RequestsPerSecond: mcpSettings.RateLimit,
		BurstSize:         mcpSettings.Burst,
	}
}

// ReloadSettings re-reads the rate limit from settings. It is safe to
// call while the server runs.
func (s *Server) ReloadSettings() {
	cfg := s.rateLimitConfig()
	s.limiter.Configure(cfg)
	logger.Debug("MCP rate limit %g/s, burst %d", cfg.RequestsPerSecond, cfg.BurstSize)
}

// RateLimiter returns the limiter guarding the HTTP transport.
func (s *Server) RateLimiter() *RateLimiter {
	return s.limiter
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the rate limited streamable HTTP handler.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
	return s.limiter.Middleware(handler)
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

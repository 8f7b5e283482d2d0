package mcp

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/phonet/internal/logger"
)

// RateLimitConfig holds the HTTP rate limit.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit. Zero or less disables
	// limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// RateLimiter is a token bucket whose limit can be changed while the
// server runs.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	cfg     RateLimitConfig
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	r := &RateLimiter{}
	r.Configure(cfg)
	return r
}

// Configure replaces the limit. Tokens already granted are not revoked.
func (r *RateLimiter) Configure(cfg RateLimitConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.BurstSize < 1 {
		cfg.BurstSize = 1
	}
	r.cfg = cfg

	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	if r.limiter == nil {
		r.limiter = rate.NewLimiter(limit, cfg.BurstSize)
		return
	}
	r.limiter.SetLimit(limit)
	r.limiter.SetBurst(cfg.BurstSize)
}

// Config returns the current configuration.
func (r *RateLimiter) Config() RateLimitConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// Allow reports whether a request may proceed now.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Allow()
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
func (r *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.Allow() {
			logger.Debug("Rate limited %s %s", req.Method, req.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}

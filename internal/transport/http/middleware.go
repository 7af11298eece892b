package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"
)

// Middleware holds dependencies for the router's middleware chain.
type Middleware struct {
	logger  hclog.Logger
	limiter *rate.Limiter
}

// NewMiddleware creates a Middleware. ratePerSecond 0 disables limiting.
func NewMiddleware(logger hclog.Logger, ratePerSecond float64, burst int) *Middleware {
	var limiter *rate.Limiter
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}
	return &Middleware{
		logger:  logger,
		limiter: limiter,
	}
}

// Logging logs each request with method, path, and duration.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		m.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

// RateLimit rejects requests beyond the configured token-bucket rate.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter != nil && !m.limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

package customdomain

import (
	"errors"
	"log/slog"
	"net/http"
)

// ErrorHandler handles failures during tenant resolution at the edge.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	errorHandler  ErrorHandler
	skipPaths     []string
	requireActive bool
	policy        Policy
	logger        *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithSkipPaths sets path prefixes that bypass tenant resolution entirely
// (health checks, metrics).
func WithSkipPaths(paths []string) Option {
	return func(c *config) { c.skipPaths = paths }
}

// WithRequireActive controls whether non-active orgs are rejected
// (default true).
func WithRequireActive(require bool) Option {
	return func(c *config) { c.requireActive = require }
}

// WithPolicy sets the application policy merged onto every lock.
func WithPolicy(policy Policy) Option {
	return func(c *config) { c.policy = policy }
}

// WithLogger sets a logger for resolution events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInactiveOrg), errors.Is(err, ErrDomainNotFound):
		// Access denial and not-found collapse to the same generic message
		// so custom-domain probing leaks nothing.
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

package tenantctx

import (
	"context"
	"log/slog"
)

// Context identifies the tenant acting in the current request.
// It is an immutable value; attach it with WithContext and read it back with
// FromContext or Current.
type Context struct {
	// OrgID is the organization every database operation in this scope is
	// confined to. Must be positive.
	OrgID int64

	// UserID optionally identifies the acting user. Kept as a string so both
	// numeric ids and UUIDs fit.
	UserID string

	// WorkspaceID optionally narrows the scope to a workspace within the org.
	// Zero means no workspace scoping.
	WorkspaceID int64
}

// Validate reports whether the context carries a usable org id.
func (c Context) Validate() error {
	if c.OrgID <= 0 {
		return ErrInvalidOrgID
	}
	return nil
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext attaches the tenant to the context. Attaching inside an existing
// scope shadows the outer tenant for the derived context only; the outer
// context is unaffected.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext retrieves the tenant from the context.
// Returns a zero Context and false if no tenant scope is active.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(contextKey{}).(Context)
	return tc, ok
}

// HasContext reports whether a tenant scope is active.
func HasContext(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

// Current retrieves the tenant from the context, failing with
// ErrNoTenantContext when no scope is active.
func Current(ctx context.Context) (Context, error) {
	tc, ok := FromContext(ctx)
	if !ok {
		return Context{}, ErrNoTenantContext
	}
	return tc, nil
}

// MustFromContext retrieves the tenant from the context.
// Panics if no scope is active. Use this only in code paths that cannot
// legitimately run without a tenant.
func MustFromContext(ctx context.Context) Context {
	tc, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoTenantContext)
	}
	return tc
}

// RunWith executes fn inside a tenant scope. The tenant is validated first,
// the scope is visible only to fn's context chain, and the caller's context is
// restored implicitly when fn returns (success or error).
func RunWith(ctx context.Context, tc Context, fn func(ctx context.Context) error) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	return fn(WithContext(ctx, tc))
}

// LoggerExtractor returns a ContextExtractor for the logger that stamps the
// active org (and user, when present) onto every log record.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		tc, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		if tc.UserID != "" {
			return slog.Group("tenant",
				slog.Int64("org_id", tc.OrgID),
				slog.String("user_id", tc.UserID),
			), true
		}
		return slog.Int64("org_id", tc.OrgID), true
	}
}

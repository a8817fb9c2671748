package permission

import (
	"context"
	"strings"

	"github.com/tenantkit/tenantkit/pkg/tenantctx"
)

// roleKey is a private type to prevent collisions with other context keys.
type roleKey struct{}

// WithRole attaches the acting role to the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromContext retrieves the acting role from the context.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey{}).(string)
	return role, ok
}

// RoleSource provides role-to-permissions data.
type RoleSource interface {
	Load(ctx context.Context) (map[string][]string, error)
}

// StaticRoles is a RoleSource over a fixed map, for configuration assembled
// in code.
type StaticRoles map[string][]string

func (s StaticRoles) Load(ctx context.Context) (map[string][]string, error) {
	return s, nil
}

// Superuser short-circuits every check to allowed for matching tenants.
type Superuser func(tc tenantctx.Context) bool

// Checker authorizes permissions against roles. Immutable after
// construction; safe for concurrent use.
type Checker struct {
	roles     map[string][]string
	superuser Superuser
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithSuperuser installs a predicate that bypasses role checks entirely,
// e.g. for platform operators.
func WithSuperuser(pred Superuser) CheckerOption {
	return func(c *Checker) { c.superuser = pred }
}

// NewChecker builds a checker from source. Permissions are copied so later
// mutation of the source cannot change authorization behavior.
func NewChecker(ctx context.Context, source RoleSource, opts ...CheckerOption) (*Checker, error) {
	loaded, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	roles := make(map[string][]string, len(loaded))
	for role, perms := range loaded {
		roles[role] = append([]string(nil), perms...)
	}
	c := &Checker{roles: roles}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CheckOption configures one check call.
type CheckOption func(*checkConfig)

type checkConfig struct {
	throwOnDenied bool
}

// WithThrowOnDenied makes a failing check return ErrPermissionDenied instead
// of (false, nil).
func WithThrowOnDenied() CheckOption {
	return func(c *checkConfig) { c.throwOnDenied = true }
}

// Check authorizes permission for the tenant's acting role (taken from ctx).
// The superuser predicate, when installed, short-circuits to allowed.
func (c *Checker) Check(ctx context.Context, tc tenantctx.Context, permission string, opts ...CheckOption) (bool, error) {
	cfg := &checkConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := tc.Validate(); err != nil {
		return false, ErrInvalidTenant
	}

	if c.superuser != nil && c.superuser(tc) {
		return true, nil
	}

	role, ok := RoleFromContext(ctx)
	if !ok {
		return false, ErrNoRoleInContext
	}
	grants, ok := c.roles[role]
	if !ok {
		return false, ErrUnknownRole
	}

	for _, grant := range grants {
		if matches(permission, grant) {
			return true, nil
		}
	}
	if cfg.throwOnDenied {
		return false, ErrPermissionDenied
	}
	return false, nil
}

// matches reports whether permission satisfies a grant pattern: exact match,
// the global wildcard "*", or a namespace wildcard like "projects.*".
func matches(permission, grant string) bool {
	if permission == grant || grant == "*" {
		return true
	}
	if strings.HasSuffix(grant, "*") {
		prefix := strings.TrimSuffix(grant, "*")
		prefix = strings.TrimSuffix(prefix, ".")
		return strings.HasPrefix(permission, prefix+".")
	}
	return false
}

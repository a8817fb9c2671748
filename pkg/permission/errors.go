package permission

import "errors"

var (
	// ErrPermissionDenied is returned when a check fails and the caller
	// requested denial as an error.
	ErrPermissionDenied = errors.New("permission: denied")

	// ErrUnknownRole is returned when the acting role is not in the checker.
	ErrUnknownRole = errors.New("permission: unknown role")

	// ErrNoRoleInContext is returned when a check runs without a role
	// attached to the context.
	ErrNoRoleInContext = errors.New("permission: no role in context")

	// ErrInvalidTenant is returned when the tenant context fails validation.
	ErrInvalidTenant = errors.New("permission: invalid tenant context")
)

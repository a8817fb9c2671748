package tenantctx

import "errors"

var (
	// ErrNoTenantContext is returned when the tenant is read outside any
	// tenant scope. This is a programming error: the request entry point
	// did not attach a tenant via WithContext or RunWith.
	ErrNoTenantContext = errors.New("tenantctx: no tenant context in scope (request entry missing WithContext/RunWith wrapper)")

	// ErrInvalidOrgID is returned when a Context carries a non-positive org id.
	ErrInvalidOrgID = errors.New("tenantctx: org id must be a positive integer")
)

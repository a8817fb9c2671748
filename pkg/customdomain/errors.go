package customdomain

import "errors"

var (
	// ErrDomainNotFound is returned by providers when a hostname has no
	// mapping. The resolver translates it into a nil resolution: "not a
	// custom domain, fall back to primary-domain behavior". Any other
	// provider error propagates unchanged.
	ErrDomainNotFound = errors.New("customdomain: domain not mapped")

	// ErrInactiveOrg is returned when a resolved org is not active and the
	// middleware requires active orgs.
	ErrInactiveOrg = errors.New("customdomain: org is not active")

	// ErrInvalidHostname is returned for empty or malformed hostnames.
	ErrInvalidHostname = errors.New("customdomain: invalid hostname")
)

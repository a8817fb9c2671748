package customdomain

import (
	"net/http"
	"strconv"
)

// Wire contract between the edge layer and the application layer.
const (
	HeaderCustomDomain      = "x-custom-domain"
	HeaderCustomDomainHost  = "x-custom-domain-host"
	HeaderCustomDomainOrgID = "x-custom-domain-org-id"
)

// Lock confines a request to one organization for its whole lifetime. A nil
// Lock means the request is unconstrained (platform-domain traffic).
type Lock struct {
	// Host is the custom domain the request arrived on.
	Host string

	// OrgID is the organization the request is locked to. Always positive in
	// a valid Lock.
	OrgID int64

	// BlockAdminRoutes is an application policy flag merged in by
	// ApplyPolicy; it never comes off the wire.
	BlockAdminRoutes bool
}

// Valid reports whether the lock carries a usable org id.
func (l *Lock) Valid() bool {
	return l != nil && l.OrgID > 0
}

// SetTenantHeaders seals a verified lock into h. The three tenant headers are
// always deleted first, regardless of input; this is the anti-spoofing
// invariant: forged values never survive this call. Only a valid lock re-sets
// them from trusted, resolver-derived values.
func SetTenantHeaders(h http.Header, lock *Lock) {
	h.Del(HeaderCustomDomain)
	h.Del(HeaderCustomDomainHost)
	h.Del(HeaderCustomDomainOrgID)

	if !lock.Valid() {
		return
	}
	h.Set(HeaderCustomDomain, "true")
	h.Set(HeaderCustomDomainHost, lock.Host)
	h.Set(HeaderCustomDomainOrgID, strconv.FormatInt(lock.OrgID, 10))
}

// ParseTenantHeaders reads a lock back from h. Pure parsing, no policy:
// returns nil unless the custom-domain header is exactly "true" and the org
// id is a positive decimal.
func ParseTenantHeaders(h http.Header) *Lock {
	if h.Get(HeaderCustomDomain) != "true" {
		return nil
	}
	orgID, err := strconv.ParseInt(h.Get(HeaderCustomDomainOrgID), 10, 64)
	if err != nil || orgID <= 0 {
		return nil
	}
	return &Lock{
		Host:  h.Get(HeaderCustomDomainHost),
		OrgID: orgID,
	}
}

// Policy carries application-specific flags merged onto a parsed lock.
type Policy struct {
	// BlockAdminRoutes marks the lock as forbidding admin surfaces on
	// custom-domain traffic.
	BlockAdminRoutes bool
}

// ApplyPolicy merges policy flags onto a parsed lock. A nil lock passes
// through unchanged; the input lock is never mutated.
func ApplyPolicy(lock *Lock, policy Policy) *Lock {
	if lock == nil {
		return nil
	}
	merged := *lock
	merged.BlockAdminRoutes = policy.BlockAdminRoutes
	return &merged
}

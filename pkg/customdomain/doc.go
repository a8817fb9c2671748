// Package customdomain resolves inbound hostnames to the organization they
// are permanently mapped to, and seals that decision into a small set of
// internal headers before any handler runs.
//
// A SaaS platform serves two kinds of traffic: requests to its own domains
// (app.example.com and friends) and requests to customer-owned custom domains
// (portal.acme.com) that are locked to exactly one org. This package decides
// which kind a request is, and for custom-domain traffic produces a Lock that
// downstream code treats as the single source of truth for the acting org.
//
// # Anti-spoofing
//
// The lock travels between the edge and the application in three headers:
//
//	x-custom-domain:        "true" or absent
//	x-custom-domain-host:   the matched hostname
//	x-custom-domain-org-id: decimal org id
//
// SetTenantHeaders always deletes all three before conditionally re-setting
// them from resolver-derived values. A request arriving with forged tenant
// headers on a platform-domain path therefore has them erased before any
// application code can read them. ParseTenantHeaders is pure and strict: the
// lock header must be exactly "true" and the org id a positive decimal, or
// the whole set reads as absent.
//
// # Platform-domain matching
//
// IsPlatformDomain uses case-insensitive exact or dot-suffix matching:
// "app.example.com" matches root "example.com", "fakeexample.com" does not.
// A subdomain under attacker control on a platform root would be classified
// as platform rather than custom; this residual risk is accepted because
// platform DNS is centrally controlled.
//
// # Caching
//
// Resolutions are cached per exact hostname. Whenever a domain mapping is
// created, updated, or deleted, Invalidate must be called synchronously with
// the write; a stale window longer than that one call is a correctness bug,
// not an acceptable tradeoff. An in-memory cache is the default; a Redis
// cache (NewRedisCache) serves multi-process deployments.
package customdomain

package customdomain

import (
	"strings"
)

// NormalizeHost lowercases a hostname and strips any port suffix.
func NormalizeHost(hostname string) string {
	host := strings.TrimSpace(strings.ToLower(hostname))
	if idx := strings.LastIndex(host, ":"); idx != -1 && !strings.Contains(host[idx+1:], "]") {
		// Keep bracketed IPv6 literals intact; only strip a trailing port.
		if !strings.HasSuffix(host, "]") {
			host = host[:idx]
		}
	}
	return host
}

// IsPlatformDomain reports whether hostname is one of the platform's own
// domains: a case-insensitive exact match of a platform root, or a
// dot-suffixed subdomain of one. Suffix matching is deliberate:
// "app.example.com" matches root "example.com", while "fakeexample.com" does
// not (no intervening dot).
func IsPlatformDomain(hostname string, platformRoots []string) bool {
	host := NormalizeHost(hostname)
	if host == "" {
		return false
	}
	for _, root := range platformRoots {
		root = NormalizeHost(root)
		if root == "" {
			continue
		}
		if host == root || strings.HasSuffix(host, "."+root) {
			return true
		}
	}
	return false
}

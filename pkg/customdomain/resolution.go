package customdomain

import "context"

// Status is the lifecycle state of a custom-domain mapping.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"
)

// Resolution is the outcome of mapping a hostname to an organization.
type Resolution struct {
	OrgID    int64             `json:"org_id"`
	Status   Status            `json:"status"`
	OrgName  string            `json:"org_name,omitempty"`
	Branding map[string]string `json:"branding,omitempty"`
}

// Active reports whether the mapping is usable for serving traffic.
func (r *Resolution) Active() bool {
	return r != nil && r.Status == StatusActive
}

// Provider loads domain mappings from a data source.
type Provider interface {
	// LookupHost resolves a normalized hostname to its org mapping.
	// Returns ErrDomainNotFound when no mapping exists; any other error is
	// treated as a lookup failure and propagates to the caller.
	LookupHost(ctx context.Context, hostname string) (*Resolution, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, hostname string) (*Resolution, error)

func (f ProviderFunc) LookupHost(ctx context.Context, hostname string) (*Resolution, error) {
	return f(ctx, hostname)
}

package rlspolicy

import (
	"fmt"
	"regexp"
	"sort"
)

// IsolationKind names the tenant boundary a table's rows are confined to.
type IsolationKind string

const (
	// KindPublic tables are platform-global; no policies are generated.
	KindPublic IsolationKind = "public"
	// KindOrg rows belong to exactly one organization.
	KindOrg IsolationKind = "org"
	// KindWorkspace rows belong to a workspace within an organization. The
	// database predicate is the org boundary; workspace narrowing happens at
	// the application layer (the session carries no workspace variable).
	KindWorkspace IsolationKind = "workspace"
	// KindUser rows are private to one user within an organization.
	KindUser IsolationKind = "user"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Entry describes the isolation of one table.
type Entry struct {
	// Table is the unqualified table name. Unique within a Registry.
	Table string `yaml:"table"`

	// Kind selects the predicate the generated policies enforce.
	Kind IsolationKind `yaml:"isolation"`

	// OrgColumn overrides the org tenant-key column (default "org_id").
	OrgColumn string `yaml:"org_column,omitempty"`

	// WorkspaceColumn overrides the workspace column (default
	// "workspace_id"). Only meaningful for KindWorkspace.
	WorkspaceColumn string `yaml:"workspace_column,omitempty"`

	// UserColumn overrides the owning-user column (default "user_id").
	// Only meaningful for KindUser.
	UserColumn string `yaml:"user_column,omitempty"`
}

// withDefaults returns the entry with blank column names filled in.
func (e Entry) withDefaults() Entry {
	if e.OrgColumn == "" {
		e.OrgColumn = "org_id"
	}
	if e.WorkspaceColumn == "" {
		e.WorkspaceColumn = "workspace_id"
	}
	if e.UserColumn == "" {
		e.UserColumn = "user_id"
	}
	return e
}

// Validate checks the entry's table name, kind, and column identifiers.
func (e Entry) Validate() error {
	if !identPattern.MatchString(e.Table) {
		return fmt.Errorf("%w: table name %q", ErrInvalidEntry, e.Table)
	}
	switch e.Kind {
	case KindPublic, KindOrg, KindWorkspace, KindUser:
	default:
		return fmt.Errorf("%w: isolation kind %q", ErrInvalidEntry, e.Kind)
	}
	for _, col := range []string{e.OrgColumn, e.WorkspaceColumn, e.UserColumn} {
		if col != "" && !identPattern.MatchString(col) {
			return fmt.Errorf("%w: column name %q", ErrInvalidEntry, col)
		}
	}
	return nil
}

// RequiredColumns lists the columns the live schema must carry for the
// entry's policies to be deployable.
func (e Entry) RequiredColumns() []string {
	e = e.withDefaults()
	switch e.Kind {
	case KindOrg:
		return []string{e.OrgColumn}
	case KindWorkspace:
		return []string{e.OrgColumn, e.WorkspaceColumn}
	case KindUser:
		return []string{e.OrgColumn, e.UserColumn}
	default:
		return nil
	}
}

// Registry is a static table-name-to-entry mapping. Safe for concurrent reads
// after initialization; registration is not synchronized because the registry
// is assembled once at startup and read-only thereafter.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry, failing with ErrDuplicateTable on collision.
func (r *Registry) Register(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, exists := r.entries[e.Table]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTable, e.Table)
	}
	r.entries[e.Table] = e.withDefaults()
	return nil
}

// MustRegister is Register panicking on error, for static initialization
// where a collision is a programming error that should prevent startup.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the entry for a table.
func (r *Registry) Lookup(table string) (Entry, bool) {
	e, ok := r.entries[table]
	return e, ok
}

// Tables returns all registered table names, sorted.
func (r *Registry) Tables() []string {
	tables := make([]string, 0, len(r.entries))
	for t := range r.entries {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}

// Len returns the number of registered tables.
func (r *Registry) Len() int { return len(r.entries) }

// Merge combines two registries into a new one, failing with
// ErrDuplicateTable rather than last-write-wins when both name a table.
func Merge(a, b *Registry) (*Registry, error) {
	merged := NewRegistry()
	for _, reg := range []*Registry{a, b} {
		if reg == nil {
			continue
		}
		for _, table := range reg.Tables() {
			e := reg.entries[table]
			if err := merged.Register(e); err != nil {
				return nil, err
			}
		}
	}
	return merged, nil
}

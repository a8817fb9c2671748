package scoperepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tenantkit/tenantkit/pkg/tenantctx"
)

// Row is a single database row keyed by column name.
type Row = map[string]any

// Querier is the subset of pgx operations the repository needs.
// Both *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ScopingPolicy declares which tenant keys a table carries. Attached at
// construction time and immutable for the repository's lifetime.
type ScopingPolicy struct {
	// OrgScoped tables require a tenant scope; every operation is confined to
	// the active org. Platform-global tables leave this false.
	OrgScoped bool

	// WorkspaceScoped tables additionally carry a workspace column, filtered
	// and stamped when the active tenant names a workspace.
	WorkspaceScoped bool
}

// identPattern restricts table and column names to characters that are safe to
// interpolate into SQL text. Values always go through placeholders.
var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Repository executes tenant-confined operations against one table.
type Repository struct {
	db     Querier
	table  string
	policy ScopingPolicy

	idCol        string
	orgCol       string
	workspaceCol string
}

// Option customizes a Repository.
type Option func(*Repository)

// WithIDColumn overrides the primary-key column name (default "id").
func WithIDColumn(name string) Option {
	return func(r *Repository) { r.idCol = name }
}

// WithOrgColumn overrides the org tenant-key column name (default "org_id").
func WithOrgColumn(name string) Option {
	return func(r *Repository) { r.orgCol = name }
}

// WithWorkspaceColumn overrides the workspace column name (default "workspace_id").
func WithWorkspaceColumn(name string) Option {
	return func(r *Repository) { r.workspaceCol = name }
}

// New creates a repository for table with the given scoping policy.
// Panics on invalid identifiers: table and column names are wiring
// configuration, and misconfiguration should prevent startup.
func New(db Querier, table string, policy ScopingPolicy, opts ...Option) *Repository {
	r := &Repository{
		db:           db,
		table:        table,
		policy:       policy,
		idCol:        "id",
		orgCol:       "org_id",
		workspaceCol: "workspace_id",
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, ident := range []string{r.table, r.idCol, r.orgCol, r.workspaceCol} {
		if !identPattern.MatchString(ident) {
			panic(fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident))
		}
	}
	return r
}

// WithTx returns a copy of the repository bound to tx. Table, policy, and
// column configuration carry over.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	clone := *r
	clone.db = tx
	return &clone
}

// Table returns the table name the repository is bound to.
func (r *Repository) Table() string { return r.table }

// Policy returns the repository's scoping policy.
func (r *Repository) Policy() ScopingPolicy { return r.policy }

// tenantFilter resolves the tenant-key columns for the current scope.
// Returns an empty map for unscoped tables; fails when an org-scoped table is
// used without a tenant scope.
func (r *Repository) tenantFilter(ctx context.Context) (map[string]any, error) {
	if !r.policy.OrgScoped {
		return map[string]any{}, nil
	}
	tc, ok := tenantctx.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: table %s", ErrMissingTenantContext, r.table)
	}
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	scope := map[string]any{r.orgCol: tc.OrgID}
	if r.policy.WorkspaceScoped && tc.WorkspaceID > 0 {
		scope[r.workspaceCol] = tc.WorkspaceID
	}
	return scope, nil
}

// scopedFilters merges caller filters with the tenant scope. Caller-supplied
// values for the tenant-key columns are untrusted and overwritten.
func (r *Repository) scopedFilters(ctx context.Context, filters map[string]any) (map[string]any, error) {
	scope, err := r.tenantFilter(ctx)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]any, len(filters)+len(scope))
	for k, v := range filters {
		if !identPattern.MatchString(k) {
			return nil, fmt.Errorf("%w: filter key %q", ErrInvalidIdentifier, k)
		}
		merged[k] = v
	}
	if r.policy.OrgScoped {
		// Drop forged tenant keys even when the scope does not re-add them
		// (workspace column without an active workspace).
		delete(merged, r.orgCol)
		delete(merged, r.workspaceCol)
	}
	for k, v := range scope {
		merged[k] = v
	}
	return merged, nil
}

// FindMany returns all rows matching filters within the current tenant.
func (r *Repository) FindMany(ctx context.Context, filters map[string]any) ([]Row, error) {
	where, err := r.scopedFilters(ctx, filters)
	if err != nil {
		return nil, err
	}
	sql, args := buildSelect(r.table, where, 0)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scoperepo: query %s: %w", r.table, err)
	}
	return pgx.CollectRows(rows, pgx.RowToMap)
}

// FindOne returns the row with the given id within the current tenant.
// Returns ErrNotFound whether the row is absent or owned by another tenant.
func (r *Repository) FindOne(ctx context.Context, id any) (Row, error) {
	where, err := r.scopedFilters(ctx, map[string]any{r.idCol: id})
	if err != nil {
		return nil, err
	}
	sql, args := buildSelect(r.table, where, 1)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scoperepo: query %s: %w", r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: table %s", ErrNotFound, r.table)
		}
		return nil, err
	}
	return row, nil
}

// Count returns the number of rows matching filters within the current tenant.
func (r *Repository) Count(ctx context.Context, filters map[string]any) (int64, error) {
	where, err := r.scopedFilters(ctx, filters)
	if err != nil {
		return 0, err
	}
	sql, args := buildCount(r.table, where)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("scoperepo: count %s: %w", r.table, err)
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[int64])
}

// Create inserts data stamped with the active tenant key. Caller-supplied
// values for the tenant-key columns are overwritten, never respected.
func (r *Repository) Create(ctx context.Context, data map[string]any) (Row, error) {
	scope, err := r.tenantFilter(ctx)
	if err != nil {
		return nil, err
	}
	payload := make(map[string]any, len(data)+len(scope))
	for k, v := range data {
		if !identPattern.MatchString(k) {
			return nil, fmt.Errorf("%w: column %q", ErrInvalidIdentifier, k)
		}
		payload[k] = v
	}
	if r.policy.OrgScoped {
		delete(payload, r.orgCol)
		delete(payload, r.workspaceCol)
	}
	for k, v := range scope {
		payload[k] = v
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: table %s", ErrEmptyPayload, r.table)
	}
	sql, args := buildInsert(r.table, payload)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scoperepo: insert %s: %w", r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: table %s", ErrCreateFailed, r.table)
		}
		return nil, err
	}
	return row, nil
}

// Update patches the row with the given id within the current tenant. The
// tenant-key columns are immutable post-creation: they are stripped from the
// patch before writing. Returns ErrUpdateFailed when zero rows match.
func (r *Repository) Update(ctx context.Context, id any, patch map[string]any) (Row, error) {
	where, err := r.scopedFilters(ctx, map[string]any{r.idCol: id})
	if err != nil {
		return nil, err
	}
	set := make(map[string]any, len(patch))
	for k, v := range patch {
		if !identPattern.MatchString(k) {
			return nil, fmt.Errorf("%w: column %q", ErrInvalidIdentifier, k)
		}
		set[k] = v
	}
	delete(set, r.orgCol)
	delete(set, r.workspaceCol)
	delete(set, r.idCol)
	if len(set) == 0 {
		// Nothing left to write after stripping immutable keys.
		return r.FindOne(ctx, id)
	}
	sql, args := buildUpdate(r.table, set, where)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("scoperepo: update %s: %w", r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: table %s, id %v", ErrUpdateFailed, r.table, id)
		}
		return nil, err
	}
	return row, nil
}

// Delete removes the row with the given id within the current tenant.
// Returns ErrDeleteFailed when zero rows match.
func (r *Repository) Delete(ctx context.Context, id any) error {
	where, err := r.scopedFilters(ctx, map[string]any{r.idCol: id})
	if err != nil {
		return err
	}
	sql, args := buildDelete(r.table, where)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("scoperepo: delete %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: table %s, id %v", ErrDeleteFailed, r.table, id)
	}
	return nil
}

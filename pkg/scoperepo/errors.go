package scoperepo

import "errors"

var (
	// ErrMissingTenantContext is returned when an org-scoped repository is
	// used outside any tenant scope. Programming error; the call chain is
	// missing its tenantctx entry wrapper.
	ErrMissingTenantContext = errors.New("scoperepo: org-scoped operation without tenant context")

	// ErrNotFound is returned by FindOne when no row matches within the
	// current tenant. A row owned by another tenant reports the same error.
	ErrNotFound = errors.New("scoperepo: row not found")

	// ErrCreateFailed is returned when an insert produced no row.
	ErrCreateFailed = errors.New("scoperepo: create returned no row")

	// ErrUpdateFailed is returned when an update matched zero rows: the row
	// does not exist or is not owned by the current tenant. The two cases are
	// deliberately indistinguishable.
	ErrUpdateFailed = errors.New("scoperepo: update matched no row")

	// ErrDeleteFailed is returned when a delete matched zero rows, with the
	// same ambiguity as ErrUpdateFailed.
	ErrDeleteFailed = errors.New("scoperepo: delete matched no row")

	// ErrInvalidIdentifier is returned when a table or column name fails
	// validation. Identifiers are interpolated into SQL and are therefore
	// restricted to a safe character set.
	ErrInvalidIdentifier = errors.New("scoperepo: invalid SQL identifier")

	// ErrEmptyPayload is returned when Create is called with no columns.
	ErrEmptyPayload = errors.New("scoperepo: empty create payload")
)

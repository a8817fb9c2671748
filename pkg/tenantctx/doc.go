// Package tenantctx carries the tenant identity of the current request through
// context.Context so every downstream layer operates on the same organization.
//
// The package is the leaf dependency of the isolation core: the data-access
// layer reads the active org from here before touching the database, the
// permission layer authorizes against it, and the logger can stamp it onto
// every record.
//
// # Model
//
// A Context value names the acting organization (required), the acting user
// (optional) and the active workspace (optional). It is an immutable value
// type: once attached to a context.Context it is never mutated, only shadowed
// by attaching a new value in a derived context. Because Go contexts are
// per-request and flow explicitly through every call, concurrently running
// requests can never observe each other's tenant; there is no ambient global
// to leak through.
//
// # Usage
//
//	tc := tenantctx.Context{OrgID: 42, UserID: "u_123"}
//	ctx := tenantctx.WithContext(r.Context(), tc)
//
//	// Anywhere downstream:
//	tc, err := tenantctx.Current(ctx)
//	if err != nil {
//		// Programming error: the request never entered a tenant scope.
//	}
//
// Scoped execution with automatic shadowing:
//
//	err := tenantctx.RunWith(ctx, tc, func(ctx context.Context) error {
//		return doWork(ctx) // sees tc; outer context is untouched
//	})
//
// # Failure semantics
//
// Reading the tenant outside any scope is a programming error, not a
// recoverable runtime condition. Current returns ErrNoTenantContext naming the
// likely cause; MustFromContext panics. Handlers that genuinely tolerate an
// absent tenant use FromContext or HasContext.
package tenantctx

// Package scoperepo provides an org-scoped data-access layer that injects the
// active tenant key into every database operation and refuses to let callers
// override it.
//
// A Repository is a thin façade over one table, constructed with a
// ScopingPolicy that declares whether rows of that table belong to an org
// and/or a workspace. Every read filters by the tenant from the ambient
// tenantctx scope; every write stamps the tenant onto the payload. Values the
// caller supplies for the tenant-key columns are treated as untrusted input
// and overwritten; a request acting as org A cannot create, read, or mutate
// org B's rows even if it passes org B's id explicitly.
//
// # Usage
//
//	repo := scoperepo.New(pool, "projects", scoperepo.ScopingPolicy{OrgScoped: true})
//
//	err := tenantctx.RunWith(ctx, tenantctx.Context{OrgID: 42}, func(ctx context.Context) error {
//		row, err := repo.Create(ctx, map[string]any{"name": "alpha"})
//		// row["org_id"] == 42, regardless of what the caller passed.
//		return err
//	})
//
// Update and Delete scope their WHERE clause by tenant key plus id. A zero-row
// result is reported the same way whether the row does not exist or belongs to
// another tenant, so existence of foreign rows never leaks.
//
// # Second enforcement layer
//
// SetSessionTenant exports the active tenant into the database session
// variables that generated row-security policies (see package rlspolicy)
// compare against. Call it on a transaction before running queries so the
// database enforces the same boundary the repository does:
//
//	tx, _ := pool.Begin(ctx)
//	if err := scoperepo.SetSessionTenant(ctx, tx); err != nil { ... }
//	rows, err := repo.WithTx(tx).FindMany(ctx, nil)
//
// # Transactions
//
// WithTx returns a repository bound to a transaction; the table, policy, and
// column configuration carry over unchanged.
package scoperepo

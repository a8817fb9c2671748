// Package rlspolicy declares which tables require tenant isolation and turns
// that declaration into PostgreSQL row-level-security policies.
//
// The package is the second enforcement layer of the isolation core: the
// application-level repository (package scoperepo) filters and stamps the
// tenant key on every operation, and the policies generated here make the
// database enforce the same boundary against anything that slips past the
// application, whether a missed code path or an ad-hoc query.
//
// # Registry
//
// A Registry is a static, read-only mapping from table name to isolation
// entry, assembled once at process start. Registering the same table twice,
// directly or by merging two registries, fails with ErrDuplicateTable rather
// than silently overwriting, because a silent overwrite would mean two parts
// of the codebase disagree about a table's isolation and one of them loses.
//
//	reg := rlspolicy.NewRegistry()
//	reg.MustRegister(rlspolicy.Entry{Table: "projects", Kind: rlspolicy.KindOrg})
//	reg.MustRegister(rlspolicy.Entry{Table: "notes", Kind: rlspolicy.KindUser})
//
// Registries can also be loaded from a YAML file (see LoadFile), which keeps
// the isolation declaration next to the schema migrations it describes.
//
// # Generation
//
// Statements is a pure function from Entry to DDL. For each isolated table it
// enables and forces row security, then drops and recreates one deterministic
// policy per action (SELECT, INSERT, UPDATE, DELETE) whose predicate compares
// the session variables set by scoperepo.SetSessionTenant against the row's
// tenant columns. Drop-then-create makes redeployment idempotent.
//
// # Deployment
//
// Deploy is a separate, explicit step. It introspects each table to verify
// the required tenant columns exist, executes the generated statements, and
// returns a per-table report: one table's failure never aborts the others,
// because a half-deployed fleet with a clear report beats an all-or-nothing
// rollback that leaves every table unprotected. Dry-run mode returns the
// statements without executing anything.
package rlspolicy

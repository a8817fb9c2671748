// Package permission authorizes an operation against the resolved tenant
// context before the data-access layer is invoked.
//
// Permissions are hierarchical dot-separated strings ("projects.read",
// "admin.billing") and role grants may use wildcards ("projects.*", "*").
// A Checker is built once at startup from a RoleSource and is immutable and
// safe for concurrent use afterwards.
//
//	checker, err := permission.NewChecker(ctx, permission.StaticRoles(map[string][]string{
//		"admin":  {"*"},
//		"member": {"projects.read", "projects.write"},
//		"viewer": {"projects.read"},
//	}))
//
//	ctx = permission.WithRole(ctx, "member")
//	ok, err := checker.Check(ctx, tc, "projects.write")
//
// Denial is a value by default; WithThrowOnDenied promotes it to
// ErrPermissionDenied for call sites that treat it as a failure. A superuser
// predicate can short-circuit every check to allowed.
package permission

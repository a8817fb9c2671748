package rlspolicy

import (
	"fmt"
	"strings"
)

// Session variables the generated predicates read. They match what
// scoperepo.SetSessionTenant exports.
const (
	SessionOrgVar  = "app.current_org_id"
	SessionUserVar = "app.current_user_id"
)

// actions are the row-security policy actions, one policy each.
var actions = []string{"SELECT", "INSERT", "UPDATE", "DELETE"}

// PolicyName returns the deterministic name of the policy guarding one action
// on a table. Deterministic names are what make redeployment idempotent: the
// drop targets exactly what the previous deploy created.
func PolicyName(table, action string) string {
	return fmt.Sprintf("%s_rls_%s", table, strings.ToLower(action))
}

// predicate renders the row-visibility condition for an entry.
func predicate(e Entry) string {
	e = e.withDefaults()
	org := fmt.Sprintf("%s = current_setting('%s')::bigint", e.OrgColumn, SessionOrgVar)
	if e.Kind == KindUser {
		return fmt.Sprintf("%s AND %s = current_setting('%s')", org, e.UserColumn, SessionUserVar)
	}
	return org
}

// Statements generates the DDL deploying row security for one table:
// enable and force row security, then drop-and-recreate one policy per
// action. Pure function, no database access. Public entries generate
// nothing.
func Statements(e Entry) []string {
	if e.Kind == KindPublic {
		return nil
	}
	e = e.withDefaults()
	pred := predicate(e)

	stmts := []string{
		fmt.Sprintf("ALTER TABLE %s ENABLE ROW LEVEL SECURITY", e.Table),
		fmt.Sprintf("ALTER TABLE %s FORCE ROW LEVEL SECURITY", e.Table),
	}
	for _, action := range actions {
		name := PolicyName(e.Table, action)
		stmts = append(stmts, fmt.Sprintf("DROP POLICY IF EXISTS %s ON %s", name, e.Table))

		var clause string
		switch action {
		case "INSERT":
			clause = fmt.Sprintf("WITH CHECK (%s)", pred)
		case "UPDATE":
			clause = fmt.Sprintf("USING (%s) WITH CHECK (%s)", pred, pred)
		default: // SELECT, DELETE
			clause = fmt.Sprintf("USING (%s)", pred)
		}
		stmts = append(stmts, fmt.Sprintf("CREATE POLICY %s ON %s FOR %s %s", name, e.Table, action, clause))
	}
	return stmts
}

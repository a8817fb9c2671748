package scoperepo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tenantkit/tenantkit/pkg/tenantctx"
)

// Database session variables the generated row-security policies compare
// against (see package rlspolicy).
const (
	SessionOrgVar  = "app.current_org_id"
	SessionUserVar = "app.current_user_id"
)

// SetSessionTenant exports the active tenant into the database session so
// row-security policies enforce the same boundary as the repository.
//
// The variables are set transaction-locally (set_config is_local=true), so q
// should be a transaction; on commit or rollback the session reverts to
// carrying no tenant, which keeps pooled connections from leaking one
// request's tenant into the next.
func SetSessionTenant(ctx context.Context, q Querier) error {
	tc, ok := tenantctx.FromContext(ctx)
	if !ok {
		return ErrMissingTenantContext
	}
	if err := tc.Validate(); err != nil {
		return err
	}
	_, err := q.Exec(ctx,
		"SELECT set_config($1, $2, true), set_config($3, $4, true)",
		SessionOrgVar, strconv.FormatInt(tc.OrgID, 10),
		SessionUserVar, tc.UserID,
	)
	if err != nil {
		return fmt.Errorf("scoperepo: set session tenant: %w", err)
	}
	return nil
}

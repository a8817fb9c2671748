package customdomain

import "context"

// lockKey is a private type to prevent collisions with other context keys.
type lockKey struct{}

// EnrichContext attaches a tenant lock to the context. A nil lock returns the
// context unchanged; unconstrained requests carry no lock at all.
func EnrichContext(ctx context.Context, lock *Lock) context.Context {
	if lock == nil {
		return ctx
	}
	return context.WithValue(ctx, lockKey{}, lock)
}

// LockFromContext retrieves the tenant lock, if the request is confined to a
// custom domain.
func LockFromContext(ctx context.Context) (*Lock, bool) {
	lock, ok := ctx.Value(lockKey{}).(*Lock)
	return lock, ok
}

// LockedOrgID returns the org the request is locked to. ok is false for
// unconstrained requests.
func LockedOrgID(ctx context.Context) (int64, bool) {
	lock, ok := LockFromContext(ctx)
	if !ok || !lock.Valid() {
		return 0, false
	}
	return lock.OrgID, true
}

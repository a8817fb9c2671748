package customdomain

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/tenantkit/tenantkit/pkg/tenantctx"
)

// Middleware decides, before any handler runs, which org a request is locked
// to. Platform-domain traffic has its tenant headers erased and continues
// unconstrained; custom-domain traffic is resolved, validated, sealed into
// headers, and entered into a tenant scope.
func Middleware(resolver *Resolver, platformRoots []string, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler:  defaultErrorHandler,
		requireActive: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if IsPlatformDomain(r.Host, platformRoots) {
				// Primary-domain path: forged tenant headers are erased
				// before any application code can read them.
				SetTenantHeaders(r.Header, nil)
				next.ServeHTTP(w, r)
				return
			}

			res, err := resolver.Resolve(r.Context(), r.Host)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "custom domain resolution failed",
					slog.String("host", r.Host), slog.Any("error", err))
				cfg.errorHandler(w, r, err)
				return
			}

			if res == nil {
				// Unmapped hostname: not a custom domain. Same clearing as
				// the platform path.
				SetTenantHeaders(r.Header, nil)
				next.ServeHTTP(w, r)
				return
			}

			if cfg.requireActive && !res.Active() {
				cfg.logger.WarnContext(r.Context(), "custom domain for non-active org",
					slog.String("host", r.Host), slog.Int64("org_id", res.OrgID), slog.String("status", string(res.Status)))
				cfg.errorHandler(w, r, ErrInactiveOrg)
				return
			}

			lock := ApplyPolicy(&Lock{Host: NormalizeHost(r.Host), OrgID: res.OrgID}, cfg.policy)
			SetTenantHeaders(r.Header, lock)

			ctx := EnrichContext(r.Context(), lock)
			ctx = tenantctx.WithContext(ctx, tenantctx.Context{OrgID: lock.OrgID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLock ensures the request is confined to a custom-domain lock,
// for routes that must never serve unconstrained traffic.
func RequireLock(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := LockedOrgID(r.Context()); !ok {
				errorHandler(w, r, ErrDomainNotFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

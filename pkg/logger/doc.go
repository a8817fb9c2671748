// Package logger builds slog loggers with tenant-aware context injection.
//
// The factory wraps a standard slog handler with a decorator that pulls
// request-scoped attributes out of context at log time. Registering the
// extractors from tenantctx and requestid makes every record carry the acting
// org and the request correlation id without any call-site effort:
//
//	log := logger.New(
//		logger.WithProduction("isolation-core"),
//		logger.WithContextExtractors(
//			tenantctx.LoggerExtractor(),
//			requestid.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "project created") // includes org_id, request_id
//
// Production defaults to JSON at info level; development to text at debug
// level.
package logger

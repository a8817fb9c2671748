package pg

import "context"

// logger is the slice of slog's surface Migrate needs for goose output routing.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

package logger

import "log/slog"

// Error records a single error under the key "error"; nil yields an empty
// attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OrgID records the organization identifier under the key "org_id".
func OrgID(id int64) slog.Attr {
	return slog.Int64("org_id", id)
}

// Table records the table a data-access operation targets.
func Table(name string) slog.Attr {
	return slog.String("table", name)
}

// Host records the hostname a resolution concerns.
func Host(name string) slog.Attr {
	return slog.String("host", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

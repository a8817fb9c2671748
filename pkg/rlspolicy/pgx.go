package rlspolicy

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx operations the adapters need. Both *pgxpool.Pool
// and pgx.Tx satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgxExecutor runs deployment DDL through a pgx connection.
type PgxExecutor struct {
	DB DB
}

func (e PgxExecutor) Exec(ctx context.Context, sql string) error {
	_, err := e.DB.Exec(ctx, sql)
	return err
}

// PgxIntrospector answers schema questions through information_schema.
type PgxIntrospector struct {
	DB DB

	// Schema defaults to "public".
	Schema string
}

func (i PgxIntrospector) TableColumns(ctx context.Context, table string) (map[string]bool, error) {
	schema := i.Schema
	if schema == "" {
		schema = "public"
	}
	rows, err := i.DB.Query(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2",
		schema, table,
	)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(names))
	for _, name := range names {
		cols[name] = true
	}
	return cols, nil
}

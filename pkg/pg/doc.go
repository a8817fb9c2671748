// Package pg bootstraps the PostgreSQL layer the isolation core runs on:
// pooled connectivity via pgx/v5, schema migrations via goose/v3, health
// checks, and error classification helpers.
//
// The org-scoped repository (package scoperepo) and the row-security deployer
// (package rlspolicy) both operate on the *pgxpool.Pool this package opens.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
// Configuration comes from environment variables; see the field tags on
// Config for names and defaults.
package pg

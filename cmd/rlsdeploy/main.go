// Command rlsdeploy applies row-level security policies to a PostgreSQL
// database from a YAML isolation registry.
//
//	rlsdeploy -registry rls.yaml [-tables projects,invoices] [-dry-run]
//
// Connection settings come from the environment (PG_CONN_URL and friends).
// With -dry-run the generated DDL is printed without touching the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tenantkit/tenantkit/pkg/config"
	"github.com/tenantkit/tenantkit/pkg/logger"
	"github.com/tenantkit/tenantkit/pkg/pg"
	"github.com/tenantkit/tenantkit/pkg/rlspolicy"
)

func main() {
	var (
		registryPath = flag.String("registry", "rls.yaml", "path to the isolation registry YAML file")
		tablesFlag   = flag.String("tables", "", "comma-separated subset of tables to deploy (default: all)")
		dryRun       = flag.Bool("dry-run", false, "print the generated DDL without executing it")
	)
	flag.Parse()

	log := logger.New(logger.WithProduction("rlsdeploy"))

	if err := run(context.Background(), *registryPath, *tablesFlag, *dryRun, log); err != nil {
		log.Error("deployment failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, registryPath, tablesFlag string, dryRun bool, log *slog.Logger) error {
	reg, err := rlspolicy.LoadFile(registryPath)
	if err != nil {
		return fmt.Errorf("load registry %s: %w", registryPath, err)
	}
	log.Info("registry loaded", "path", registryPath, "tables", reg.Len())

	opts := []rlspolicy.DeployOption{}
	if dryRun {
		opts = append(opts, rlspolicy.WithDryRun())
	}
	if tablesFlag != "" {
		tables := strings.Split(tablesFlag, ",")
		for i := range tables {
			tables[i] = strings.TrimSpace(tables[i])
		}
		opts = append(opts, rlspolicy.WithTables(tables...))
	}

	var cfg pg.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load pg config: %w", err)
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	report, err := rlspolicy.Deploy(ctx, reg,
		rlspolicy.PgxIntrospector{DB: pool},
		rlspolicy.PgxExecutor{DB: pool},
		opts...,
	)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.Err != nil {
			log.Error("table failed", "table", res.Table, "error", res.Err)
			continue
		}
		log.Info("table deployed", "table", res.Table, "statements", len(res.Statements), "dry_run", dryRun)
		if dryRun {
			for _, stmt := range res.Statements {
				fmt.Println(stmt + ";")
			}
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d tables failed", len(failed), len(report.Results))
	}
	log.Info("deployment complete", "tables", len(report.Results))
	return nil
}

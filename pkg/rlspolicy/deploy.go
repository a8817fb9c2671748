package rlspolicy

import (
	"context"
	"fmt"
)

// Executor runs one DDL statement against the database.
type Executor interface {
	Exec(ctx context.Context, sql string) error
}

// Introspector answers schema questions needed to validate deployability.
type Introspector interface {
	// TableColumns returns the set of column names of a table. An empty set
	// means the table does not exist.
	TableColumns(ctx context.Context, table string) (map[string]bool, error)
}

// TableResult is the outcome of deploying policies for one table.
type TableResult struct {
	Table      string
	Statements []string
	Err        error
}

// Report aggregates per-table deployment outcomes. One table's failure never
// aborts the others.
type Report struct {
	DryRun  bool
	Results []TableResult
}

// OK reports whether every table deployed cleanly.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the results that carry an error.
func (r Report) Failed() []TableResult {
	var failed []TableResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// DeployOption configures a deployment.
type DeployOption func(*deployConfig)

type deployConfig struct {
	dryRun bool
	tables []string
}

// WithDryRun generates statements and validates the schema without executing
// anything.
func WithDryRun() DeployOption {
	return func(c *deployConfig) { c.dryRun = true }
}

// WithTables limits deployment to the named tables. Naming an unregistered
// table fails the whole deployment up front; a typo here must not silently
// leave a table unprotected.
func WithTables(tables ...string) DeployOption {
	return func(c *deployConfig) { c.tables = tables }
}

// Deploy generates and executes row-security policies for every isolated
// table in the registry, returning a per-table report.
func Deploy(ctx context.Context, reg *Registry, intr Introspector, exec Executor, opts ...DeployOption) (Report, error) {
	cfg := &deployConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tables := cfg.tables
	if len(tables) == 0 {
		tables = reg.Tables()
	} else {
		for _, t := range tables {
			if _, ok := reg.Lookup(t); !ok {
				return Report{}, fmt.Errorf("%w: %s", ErrUnknownTable, t)
			}
		}
	}

	report := Report{DryRun: cfg.dryRun}
	for _, table := range tables {
		entry, _ := reg.Lookup(table)
		stmts := Statements(entry)
		if len(stmts) == 0 {
			// Public table, nothing to deploy.
			continue
		}
		result := TableResult{Table: table, Statements: stmts}
		result.Err = deployTable(ctx, entry, stmts, intr, exec, cfg.dryRun)
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func deployTable(ctx context.Context, entry Entry, stmts []string, intr Introspector, exec Executor, dryRun bool) error {
	if intr != nil {
		cols, err := intr.TableColumns(ctx, entry.Table)
		if err != nil {
			return fmt.Errorf("rlspolicy: introspect %s: %w", entry.Table, err)
		}
		for _, required := range entry.RequiredColumns() {
			if !cols[required] {
				return fmt.Errorf("%w: %s.%s", ErrMissingColumn, entry.Table, required)
			}
		}
	}
	if dryRun {
		return nil
	}
	for _, stmt := range stmts {
		if err := exec.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("rlspolicy: %s: %w", entry.Table, err)
		}
	}
	return nil
}

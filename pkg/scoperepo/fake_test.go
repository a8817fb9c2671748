package scoperepo_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB records every statement the repository issues and replays canned
// rows, letting the tests assert on the exact SQL and arguments without a
// live database.
type fakeDB struct {
	queries []capturedQuery

	// rows is returned by the next Query call, then cleared.
	rows [][]any
	cols []string

	// affected is returned by the next Exec call.
	affected int64

	queryErr error
	execErr  error
}

type capturedQuery struct {
	sql  string
	args []any
}

func (f *fakeDB) lastQuery() capturedQuery {
	return f.queries[len(f.queries)-1]
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, capturedQuery{sql: sql, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	rows := &fakeRows{cols: f.cols, rows: f.rows, idx: -1}
	f.rows = nil
	return rows, nil
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, capturedQuery{sql: sql, args: args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", f.affected)), nil
}

// fakeRows implements pgx.Rows over a static result set.
type fakeRows struct {
	cols []string
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }
func (r *fakeRows) RawValues() [][]byte           { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.idx], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	// Mirror pgx's baseRows.Scan contract: a single pgx.RowScanner
	// destination (e.g. pgx.RowToMap's scanner) handles the row itself.
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(r)
		}
	}
	row := r.rows[r.idx]
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		switch v := d.(type) {
		case *int64:
			switch src := row[i].(type) {
			case int64:
				*v = src
			case int:
				*v = int64(src)
			case string:
				n, err := strconv.ParseInt(src, 10, 64)
				if err != nil {
					return err
				}
				*v = n
			default:
				return fmt.Errorf("fakeRows: cannot scan %T into *int64", row[i])
			}
		case *any:
			*v = row[i]
		default:
			return fmt.Errorf("fakeRows: unsupported scan destination %T", d)
		}
	}
	return nil
}

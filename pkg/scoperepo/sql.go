package scoperepo

import (
	"fmt"
	"sort"
	"strings"
)

// sortedKeys returns map keys in a stable order so generated SQL is
// deterministic and testable.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// appendWhere renders "WHERE k1 = $n AND k2 = $n+1 ..." for the filter map,
// appending values to args. Returns the extended args.
func appendWhere(sb *strings.Builder, where map[string]any, args []any) []any {
	if len(where) == 0 {
		return args
	}
	sb.WriteString(" WHERE ")
	for i, k := range sortedKeys(where) {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		args = append(args, where[k])
		fmt.Fprintf(sb, "%s = $%d", k, len(args))
	}
	return args
}

func buildSelect(table string, where map[string]any, limit int) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", table)
	args := appendWhere(&sb, where, nil)
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}
	return sb.String(), args
}

func buildCount(table string, where map[string]any) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT count(*) FROM %s", table)
	args := appendWhere(&sb, where, nil)
	return sb.String(), args
}

func buildInsert(table string, payload map[string]any) (string, []any) {
	keys := sortedKeys(payload)
	cols := make([]string, len(keys))
	placeholders := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		cols[i] = k
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = payload[k]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return sql, args
}

func buildUpdate(table string, set, where map[string]any) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET ", table)
	var args []any
	for i, k := range sortedKeys(set) {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, set[k])
		fmt.Fprintf(&sb, "%s = $%d", k, len(args))
	}
	args = appendWhere(&sb, where, args)
	sb.WriteString(" RETURNING *")
	return sb.String(), args
}

func buildDelete(table string, where map[string]any) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DELETE FROM %s", table)
	args := appendWhere(&sb, where, nil)
	return sb.String(), args
}

package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/justext"
)

// formatTimestamp stores times as second-precision UTC RFC3339 text.
func formatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// parseTimestamp parses a column written by formatTimestamp.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

// cleanedDocumentWhere builds the WHERE clause for the set fields of filter.
func cleanedDocumentWhere(filter justext.CleanedDocumentFilter) (string, []any) {
	var conds []string
	var args []any
	for _, f := range []struct {
		column string
		value  *string
	}{
		{"id", filter.ID},
		{"query_id", filter.QueryID},
		{"clueweb_id", filter.ClueWebID},
		{"engine", filter.Engine},
	} {
		if f.value != nil {
			conds = append(conds, f.column+" = ?")
			args = append(args, *f.value)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// appendPagination appends LIMIT and OFFSET for positive values.
// SQLite only accepts OFFSET after LIMIT, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

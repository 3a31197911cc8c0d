package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFieldsSupplied is returned when a partial update carries no recognized
// assignable field. Distinguishes "nothing to update" from a silent no-op
// that could mask a caller bug.
var ErrNoFieldsSupplied = errors.New("no updatable fields supplied")

// BuildUpdate assembles a partial UPDATE statement covering only the supplied
// fields. Columns outside the allow-list are skipped, never emitted, so a
// caller cannot smuggle writes to unexpected columns. The key column is match
// condition only, never assignable, even if present in fields. Placeholders
// are numbered with the key value as the final argument.
func BuildUpdate(table, keyColumn string, keyValue any, allowed []string, fields map[string]any) (string, []any, error) {
	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)

	for _, column := range allowed {
		if column == keyColumn {
			continue
		}
		value, present := fields[column]
		if !present {
			continue
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if len(assignments) == 0 {
		return "", nil, ErrNoFieldsSupplied
	}

	args = append(args, keyValue)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s=$%d",
		table, strings.Join(assignments, ", "), keyColumn, len(args))
	return query, args, nil
}

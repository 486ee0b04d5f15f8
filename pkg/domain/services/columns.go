package services

import (
	"strings"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// ColumnSpec describes one logical column and the header names accepted for it
type ColumnSpec struct {
	Key      string
	Synonyms []string
	// Fallback is the column index used when no synonym matches and HasFallback is set.
	Fallback    int
	HasFallback bool
	Optional    bool
}

// ColumnMap maps logical column keys to header indexes
type ColumnMap map[string]int

// Index returns the resolved column index for key
func (m ColumnMap) Index(key string) (int, bool) {
	i, ok := m[key]
	return i, ok
}

// Value returns the cell of row for key, or "" when the column is absent
func (m ColumnMap) Value(row []string, key string) string {
	i, ok := m[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ResolveColumns locates every spec in header. Synonyms are tried in order, each
// first as an exact match and then case-insensitively on trimmed names; the first
// hit wins. Unmatched required columns without a fallback produce a SchemaError
// naming all of them.
func ResolveColumns(table string, header []string, specs []ColumnSpec) (ColumnMap, error) {
	resolved := make(ColumnMap, len(specs))
	var missing []string

	for _, spec := range specs {
		if i, ok := findColumn(header, spec.Synonyms); ok {
			resolved[spec.Key] = i
			continue
		}
		if spec.HasFallback && spec.Fallback >= 0 && spec.Fallback < len(header) {
			resolved[spec.Key] = spec.Fallback
			continue
		}
		if !spec.Optional {
			missing = append(missing, spec.Key)
		}
	}

	if len(missing) > 0 {
		return nil, &entities.SchemaError{Table: table, Missing: missing}
	}
	return resolved, nil
}

func findColumn(header []string, synonyms []string) (int, bool) {
	for _, name := range synonyms {
		for i, col := range header {
			if col == name {
				return i, true
			}
		}
		lower := strings.ToLower(strings.TrimSpace(name))
		for i, col := range header {
			if strings.ToLower(strings.TrimSpace(col)) == lower {
				return i, true
			}
		}
	}
	return 0, false
}

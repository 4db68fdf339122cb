package ingest

import "strings"

// columnIndex resolves column names case-insensitively to their first position
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		key := strings.ToUpper(name)
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

func (c columnIndex) has(name string) bool {
	_, ok := c[strings.ToUpper(name)]
	return ok
}

// first returns the first of the candidate names present in the header, or ""
func (c columnIndex) first(candidates ...string) string {
	for _, name := range candidates {
		if c.has(name) {
			return name
		}
	}
	return ""
}

// value returns the cell for the named column, or "" when the row is short
func (c columnIndex) value(row []string, name string) string {
	i, ok := c[strings.ToUpper(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

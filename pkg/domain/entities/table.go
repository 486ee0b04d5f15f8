package entities

// RawTable is an untyped input table: a header row followed by data rows.
// Rows may be ragged; missing trailing cells read as empty.
type RawTable struct {
	Name   string     `json:"name,omitempty"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Cell returns the cell at row/col or "" when the row is too short
func (t *RawTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

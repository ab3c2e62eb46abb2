package sheet

import (
	"fmt"
	"strings"
)

// Table holds tabular data as ordered column names and rows of string cells.
// Rows may be ragged; Cell reads a missing trailing cell as "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// New constructs an empty table with the provided column names.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Cell returns the value at the given row and column index, or "" when the
// row is shorter than the header.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// SetCell writes a value, growing the row to header width when needed.
func (t *Table) SetCell(row, col int, value string) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Columns) {
		return
	}
	for len(t.Rows[row]) < len(t.Columns) {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = value
}

// AppendRow adds a copy of the provided cells as a new row.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(cells))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len reports the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the column with the exact given name, or
// -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// TrimColumns strips surrounding whitespace from every column name.
func (t *Table) TrimColumns() {
	for i, col := range t.Columns {
		t.Columns[i] = strings.TrimSpace(col)
	}
}

// Select builds a new table containing the rows at the given indexes, in the
// given order, sharing this table's column names.
func (t *Table) Select(rowIndexes []int) *Table {
	out := New(t.Columns)
	out.Rows = make([][]string, 0, len(rowIndexes))
	for _, idx := range rowIndexes {
		if idx < 0 || idx >= len(t.Rows) {
			continue
		}
		row := make([]string, len(t.Columns))
		for col := range t.Columns {
			row[col] = t.Cell(idx, col)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Validate reports an error for tables without columns.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}
	return nil
}

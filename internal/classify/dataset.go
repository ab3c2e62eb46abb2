package classify

import (
	"strings"
	"time"

	"triage/internal/refkey"
	"triage/internal/sheet"
)

// Dataset is a table prepared for classification: headers trimmed, reference
// cells normalized in place, date columns parsed, and rows grouped by
// normalized reference key.
type Dataset struct {
	Table *sheet.Table
	Cols  Columns

	keys       []string
	initial    []time.Time
	hasInitial []bool
	updated    []time.Time
	hasUpdated []bool

	groupOrder []string
	groups     map[string][]int
}

// Prepare normalizes the table for classification. The table is modified in
// place: column names are trimmed and every reference cell is replaced by its
// normalized key, so result tables carry canonical references.
func Prepare(t *sheet.Table) (*Dataset, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.TrimColumns()

	cols, err := ResolveColumns(t)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Table:      t,
		Cols:       cols,
		keys:       make([]string, t.Len()),
		initial:    make([]time.Time, t.Len()),
		hasInitial: make([]bool, t.Len()),
		updated:    make([]time.Time, t.Len()),
		hasUpdated: make([]bool, t.Len()),
		groups:     make(map[string][]int),
	}

	for i := 0; i < t.Len(); i++ {
		key := refkey.Normalize(t.Cell(i, cols.Reference))
		t.SetCell(i, cols.Reference, key)
		ds.keys[i] = key

		ds.initial[i], ds.hasInitial[i] = sheet.ParseDate(t.Cell(i, cols.Initial))
		ds.updated[i], ds.hasUpdated[i] = sheet.ParseDate(t.Cell(i, cols.Updated))

		if _, exists := ds.groups[key]; !exists {
			ds.groupOrder = append(ds.groupOrder, key)
		}
		ds.groups[key] = append(ds.groups[key], i)
	}

	return ds, nil
}

// GroupCount reports the number of distinct normalized reference keys.
func (d *Dataset) GroupCount() int {
	return len(d.groupOrder)
}

// BlankKeyRows reports how many rows normalized to the empty reference key.
// All such rows form a single group; callers surface this to operators since
// it can over-group unrelated records.
func (d *Dataset) BlankKeyRows() int {
	return len(d.groups[""])
}

// status returns the trimmed, lowercased status of a row. Blank cells yield
// "" and are treated as missing.
func (d *Dataset) status(row int) string {
	return strings.ToLower(strings.TrimSpace(d.Table.Cell(row, d.Cols.Status)))
}

// dateFor returns the parsed value of the selected date column for a row.
func (d *Dataset) dateFor(row int, col DateColumn) (time.Time, bool) {
	if col == DateInitial {
		return d.initial[row], d.hasInitial[row]
	}
	return d.updated[row], d.hasUpdated[row]
}

// statusSet computes the distinct non-missing statuses of a group.
func (d *Dataset) statusSet(rows []int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, row := range rows {
		if status := d.status(row); status != "" {
			set[status] = struct{}{}
		}
	}
	return set
}

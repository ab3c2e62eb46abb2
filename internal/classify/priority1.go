package classify

import (
	"time"

	"triage/internal/sheet"
)

// PriorityOne runs rule 1 (uniform rejection) over the prepared dataset.
//
// A group qualifies when every one of its records has the rejected status.
// Qualifying groups then contribute only the rows whose initial date is on or
// after DateThreshold and whose updated date is more than DayLimit days
// before today; a null date fails both checks. The output keeps the first
// passing row per group, in original table order.
func PriorityOne(ds *Dataset, today time.Time) *sheet.Table {
	today = sheet.Midnight(today)

	qualified := make(map[string]bool, len(ds.groupOrder))
	for _, key := range ds.groupOrder {
		qualified[key] = allRejected(ds, ds.groups[key])
	}

	seen := make(map[string]bool)
	var keep []int
	for row := range ds.keys {
		key := ds.keys[row]
		if !qualified[key] || seen[key] {
			continue
		}
		if !ds.hasInitial[row] || ds.initial[row].Before(DateThreshold) {
			continue
		}
		if !ds.hasUpdated[row] || sheet.DaysBetween(ds.updated[row], today) <= DayLimit {
			continue
		}
		seen[key] = true
		keep = append(keep, row)
	}

	return ds.Table.Select(keep)
}

func allRejected(ds *Dataset, rows []int) bool {
	for _, row := range rows {
		if ds.status(row) != rejectedStatus {
			return false
		}
	}
	return true
}

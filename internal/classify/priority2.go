package classify

import (
	"time"

	"triage/internal/sheet"
)

// PriorityTwo runs the four crosscheck rules over the prepared dataset and
// returns one result table per rule key.
//
// A group qualifies for a rule when its distinct status set equals the rule's
// pair exactly (both statuses present and nothing else) and at least one
// record carrying the non-rejected status is older than DayLimit days on the
// rule's date column. The group's rows then flow to the output, deduplicated
// to the first row per group in original table order.
func PriorityTwo(ds *Dataset, today time.Time) map[string]*sheet.Table {
	today = sheet.Midnight(today)

	results := make(map[string]*sheet.Table, len(PairRules))
	for _, rule := range PairRules {
		accepted := make(map[string]bool)
		for _, key := range ds.groupOrder {
			rows := ds.groups[key]
			if !matchesPair(ds.statusSet(rows), rule.Other) {
				continue
			}
			if hasAgedRecord(ds, rows, rule, today) {
				accepted[key] = true
			}
		}

		seen := make(map[string]bool)
		var keep []int
		for row := range ds.keys {
			key := ds.keys[row]
			if accepted[key] && !seen[key] {
				seen[key] = true
				keep = append(keep, row)
			}
		}
		results[rule.Key] = ds.Table.Select(keep)
	}
	return results
}

// matchesPair reports whether the status set is exactly {rejected, other}.
func matchesPair(set map[string]struct{}, other string) bool {
	if len(set) != 2 {
		return false
	}
	_, hasRejected := set[rejectedStatus]
	_, hasOther := set[other]
	return hasRejected && hasOther
}

func hasAgedRecord(ds *Dataset, rows []int, rule PairRule, today time.Time) bool {
	for _, row := range rows {
		if ds.status(row) != rule.Other {
			continue
		}
		if ts, ok := ds.dateFor(row, rule.Date); ok && sheet.DaysBetween(ts, today) > DayLimit {
			return true
		}
	}
	return false
}

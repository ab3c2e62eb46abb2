package classify

import (
	"time"

	"triage/internal/sheet"
)

// Outcome bundles the result tables of one full classification pass.
type Outcome struct {
	PriorityOne *sheet.Table
	PriorityTwo map[string]*sheet.Table
}

// Run executes every rule against the prepared dataset using a single
// "today" reference point.
func Run(ds *Dataset, today time.Time) Outcome {
	return Outcome{
		PriorityOne: PriorityOne(ds, today),
		PriorityTwo: PriorityTwo(ds, today),
	}
}

// Counts reports the number of result rows per rule key.
func (o Outcome) Counts() map[string]int {
	counts := make(map[string]int, 1+len(o.PriorityTwo))
	if o.PriorityOne != nil {
		counts["1"] = o.PriorityOne.Len()
	}
	for key, table := range o.PriorityTwo {
		counts[key] = table.Len()
	}
	return counts
}

// Table returns the result table for a rule key, or nil when absent.
func (o Outcome) Table(key string) *sheet.Table {
	if key == "1" {
		return o.PriorityOne
	}
	return o.PriorityTwo[key]
}

package classify

import "time"

// DayLimit is the number of elapsed days beyond which a record counts as
// stale for every rule.
const DayLimit = 25

// DateThreshold is the cutoff below which initial dates are excluded from
// rule 1.
var DateThreshold = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// rejectedStatus is the anchor status shared by all five rules.
const rejectedStatus = "rejected"

// DateColumn selects which of the two date columns a rule evaluates.
type DateColumn int

const (
	DateInitial DateColumn = iota
	DateUpdated
)

// PairRule describes one of the priority-2 crosscheck rules: a group whose
// distinct status set is exactly {rejected, Other} qualifies when at least
// one record with the Other status is older than DayLimit on Date.
type PairRule struct {
	Key   string
	Other string
	Date  DateColumn
}

// PairRules lists the four priority-2 rules in their fixed evaluation order.
// The Other strings, including the en dash in 2c, match the workflow system's
// status vocabulary verbatim.
var PairRules = []PairRule{
	{Key: "2a", Other: "po paper submitted", Date: DateInitial},
	{Key: "2b", Other: "under review (reviewer assigned by eic)", Date: DateUpdated},
	{Key: "2c", Other: "under review – revised version (reviewer assigned by eic)", Date: DateUpdated},
	{Key: "2d", Other: "paper send back to author", Date: DateUpdated},
}

// RuleKeys returns every rule identifier in display order.
func RuleKeys() []string {
	keys := []string{"1"}
	for _, rule := range PairRules {
		keys = append(keys, rule.Key)
	}
	return keys
}

// Package classify implements the fixed priority rules that bucket review
// records by per-group status history and elapsed time.
//
// Records are grouped by their normalized reference code (see refkey). Rule 1
// flags groups whose every record is rejected and stale; rules 2a through 2d
// flag groups whose distinct status set is exactly a rejected/other pair with
// at least one sufficiently aged record of the other status. The five rules
// are hard-coded business policies, not configurable predicates.
//
// Every pass is a pure function of the prepared dataset and a caller-supplied
// "today" timestamp, captured once per invocation so all rows are compared
// against the same reference point.
package classify

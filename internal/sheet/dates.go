package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists the accepted textual date formats, tried in order.
// Slashed and dashed numeric forms are read month-first, matching the
// upstream spreadsheets.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"Jan-02-06",
}

// excelEpoch is day zero of the 1900 date system as Excel stores it.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate interprets a cell as a timestamp. It accepts the textual layouts
// above plus Excel serial day numbers. The second return value is false when
// the cell is blank or unparseable; such values are treated as null by the
// classifier and never satisfy a date comparison.
func ParseDate(cell string) (time.Time, bool) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}

	// Excel serial dates survive some export paths as bare numbers.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= 1 && serial < 400000 {
		days := math.Floor(serial)
		frac := serial - days
		ts := excelEpoch.AddDate(0, 0, int(days))
		ts = ts.Add(time.Duration(frac * 24 * float64(time.Hour)))
		return ts, true
	}

	return time.Time{}, false
}

// Midnight truncates a timestamp to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween reports how many whole days have elapsed from earlier to
// later, flooring partial days the way spreadsheet day arithmetic does.
func DaysBetween(earlier, later time.Time) int {
	return int(math.Floor(later.Sub(earlier).Hours() / 24))
}

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"triage/internal/classify"
	"triage/internal/sheet"
)

// ErrLocked indicates another process holds the output directory lock.
var ErrLocked = errors.New("output directory is locked by another run")

const lockFileName = ".triage.lock"

// FileName returns the export file name for a rule key in the given format.
func FileName(ruleKey, format string) string {
	if ruleKey == "1" {
		return "Priority_1_Rejected_Final." + format
	}
	return fmt.Sprintf("Priority_%s_STRICT_CROSSCHECKED_Final.%s", ruleKey, format)
}

// Write serializes every rule's result table into dir using the given format
// ("xlsx" or "csv") and returns the written paths in rule order. The output
// directory is created when absent and exclusively locked for the duration of
// the write.
func Write(outcome classify.Outcome, dir, format string) ([]string, error) {
	switch format {
	case "xlsx", "csv":
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() {
		_ = lock.Unlock()
	}()

	var paths []string
	for _, key := range classify.RuleKeys() {
		table := outcome.Table(key)
		if table == nil {
			continue
		}
		path := filepath.Join(dir, FileName(key, format))
		if err := writeTable(table, path, format); err != nil {
			return paths, fmt.Errorf("export rule %s: %w", key, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTable(table *sheet.Table, path, format string) error {
	if format == "csv" {
		return sheet.WriteCSVFile(table, path)
	}
	return sheet.WriteXLSX(table, path)
}

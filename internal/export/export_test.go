package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"triage/internal/classify"
	"triage/internal/export"
	"triage/internal/sheet"
)

func sampleOutcome() classify.Outcome {
	p1 := sheet.New([]string{"Reference", "Status"})
	p1.AppendRow([]string{"ref-1", "rejected"})

	p2 := make(map[string]*sheet.Table)
	for _, rule := range classify.PairRules {
		p2[rule.Key] = sheet.New([]string{"Reference", "Status"})
	}
	return classify.Outcome{PriorityOne: p1, PriorityTwo: p2}
}

func TestFileNameConvention(t *testing.T) {
	if got := export.FileName("1", "xlsx"); got != "Priority_1_Rejected_Final.xlsx" {
		t.Fatalf("unexpected rule 1 file name: %q", got)
	}
	if got := export.FileName("2c", "csv"); got != "Priority_2c_STRICT_CROSSCHECKED_Final.csv" {
		t.Fatalf("unexpected rule 2c file name: %q", got)
	}
}

func TestWriteProducesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := export.Write(sampleOutcome(), dir, "csv")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(paths) != 5 {
		t.Fatalf("expected 5 files, got %d", len(paths))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing export file %q: %v", path, err)
		}
	}
	// Rule 1 output retains its data row.
	loaded, err := sheet.ReadCSVFile(paths[0])
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if loaded.Len() != 1 || loaded.Cell(0, 0) != "ref-1" {
		t.Fatalf("unexpected rule 1 contents: %v", loaded.Rows)
	}
}

func TestWriteXLSXFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := export.Write(sampleOutcome(), dir, "xlsx")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := sheet.ReadXLSX(paths[0])
	if err != nil {
		t.Fatalf("read back xlsx: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", loaded.Len())
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	if _, err := export.Write(sampleOutcome(), t.TempDir(), "parquet"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

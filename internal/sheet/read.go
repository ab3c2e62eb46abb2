package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates a file with no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ReadFile loads a tabular file, choosing the codec by extension. Supported
// extensions are .csv, .tsv, .xlsx, and .xlsm.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return ReadCSVFile(path)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (expected .csv, .tsv, .xlsx, or .xlsm)", filepath.Ext(path))
	}
}

// ReadCSVFile opens and parses a delimited text file.
func ReadCSVFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return ReadCSV(file)
}

// ReadCSV parses delimited text from r. The delimiter is detected from the
// header line among comma, semicolon, and tab.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectDelimiter(string(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}

	table := New(records[0])
	table.Rows = make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		table.AppendRow(record)
	}
	return table, nil
}

// ReadXLSX loads the first worksheet of an Excel workbook. The first row is
// treated as the header.
func ReadXLSX(path string) (*Table, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	table := New(rows[0])
	table.Rows = make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		table.AppendRow(row)
	}
	return table, nil
}

func detectDelimiter(data string) rune {
	header := data
	if idx := strings.IndexByte(header, '\n'); idx >= 0 {
		header = header[:idx]
	}
	best := ','
	bestCount := strings.Count(header, ",")
	for _, candidate := range []rune{';', '\t'} {
		if count := strings.Count(header, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

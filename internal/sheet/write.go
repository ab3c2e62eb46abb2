package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteCSVFile writes the table as comma-separated text.
func WriteCSVFile(t *Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteCSV(t, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteCSV writes the table as comma-separated text to w.
func WriteCSV(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range t.Rows {
		row := make([]string, len(t.Columns))
		for col := range t.Columns {
			row[col] = t.Cell(i, col)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes the table as a single-worksheet Excel workbook.
func WriteXLSX(t *Table, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheetName := workbook.GetSheetName(0)

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := workbook.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range t.Rows {
		cells := make([]any, len(t.Columns))
		for col := range t.Columns {
			cells[col] = t.Cell(i, col)
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d coordinates: %w", i+1, err)
		}
		if err := workbook.SetSheetRow(sheetName, anchor, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

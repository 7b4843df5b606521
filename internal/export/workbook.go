// Package export renders attendance records into an .xlsx workbook and
// decides where the file goes.
package export

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet that receives the records.
const Sheet = "Sheet1"

var headers = []string{"ID", "Employee ID", "Name", "Date", "Time", "Type", "Notes"}

var columnWidths = []float64{8, 15, 25, 12, 10, 10, 30}

// newWorkbook builds a workbook with a bold header row followed by one row per
// record, in the given order. The caller must Close the result.
func newWorkbook(records []models.AttendanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeHeader(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		row := []any{
			rec.ID,
			rec.EmployeeID,
			rec.DisplayName(),
			rec.Timestamp.Date(),
			rec.Timestamp.Clock(),
			rec.Type.Label(),
			rec.NotesText(),
		}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetColWidth(Sheet, col, col, w); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("set width of %s: %w", col, err)
		}
	}

	return f, nil
}

func writeHeader(f *excelize.File) error {
	if err := f.SetSheetRow(Sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(Sheet, "A1", last, bold)
}

// WriteWorkbook renders records and streams the .xlsx bytes to w.
func WriteWorkbook(w io.Writer, records []models.AttendanceRecord) error {
	f, err := newWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

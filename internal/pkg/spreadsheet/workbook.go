package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of the attendance sheet, keyed by the header row.
// Cells hold raw (unformatted) values so date and time serials survive
// the trip out of the workbook.
type Row struct {
	Number       int // 1-based sheet row number, including the header
	EmployeeCode string
	Date         string
	InTime       string
	OutTime      string
}

// Column headers accepted on the first row, case-insensitive.
var headerAliases = map[string]string{
	"employee id": "employeeCode",
	"employee_id": "employeeCode",
	"date":        "date",
	"in-time":     "inTime",
	"in_time":     "inTime",
	"out-time":    "outTime",
	"out_time":    "outTime",
}

// ReadAttendanceSheet decodes the first sheet of an Excel workbook. The
// first row must be a header row naming the four attendance columns.
func ReadAttendanceSheet(file io.Reader) ([]Row, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Raw cell values keep Excel date/time serials as numbers instead of
	// locale-formatted strings.
	rawRows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	// A sheet with no rows at all yields nil; a header-only sheet yields an
	// empty slice.
	if len(rawRows) == 0 {
		return nil, nil
	}

	columns := mapHeader(rawRows[0])

	if _, ok := columns["employeeCode"]; !ok {
		return nil, fmt.Errorf("header row is missing the Employee ID column")
	}
	if _, ok := columns["date"]; !ok {
		return nil, fmt.Errorf("header row is missing the Date column")
	}

	rows := make([]Row, 0, len(rawRows)-1)
	for i, raw := range rawRows[1:] {
		rows = append(rows, Row{
			Number:       i + 2,
			EmployeeCode: cell(raw, columns, "employeeCode"),
			Date:         cell(raw, columns, "date"),
			InTime:       cell(raw, columns, "inTime"),
			OutTime:      cell(raw, columns, "outTime"),
		})
	}
	return rows, nil
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, name := range header {
		if key, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[key] = i
		}
	}
	return columns
}

func cell(row []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

package attendance

import (
	"context"
	"io"
)

// AttendanceService covers the write side (spreadsheet reconciliation,
// gap filling) and the per-employee daily read view.
type AttendanceService interface {
	// ImportWorkbook decodes an uploaded Excel workbook and reconciles
	// its rows against the store. The original file is archived for
	// traceability.
	ImportWorkbook(ctx context.Context, file io.Reader, filename string) (ImportSummary, error)

	// ImportRows reconciles a batch of raw rows inside one transaction.
	// Row-level errors are collected into the summary and never abort the
	// batch; only infrastructure failures roll everything back.
	ImportRows(ctx context.Context, rows []ImportRow) (ImportSummary, error)

	// ListDaily returns the employee's records for a month, each with a
	// weekday label and a Present/Leave/Off status.
	ListDaily(ctx context.Context, employeeID int64, month string) (DailyAttendanceResponse, error)

	// FillMissing inserts a leave record for every working day of the
	// month that has no attendance row yet.
	FillMissing(ctx context.Context, req GapFillRequest) (GapFillResponse, error)
}

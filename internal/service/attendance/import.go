package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/spreadsheet"
	"github.com/attendly/attendly-backend-go/internal/repository/postgresql"
)

// ImportWorkbook implements attendance.AttendanceService. The workbook is
// archived before processing so a bad batch can always be replayed.
func (s *AttendanceServiceImpl) ImportWorkbook(ctx context.Context, file io.Reader, filename string) (attendance.ImportSummary, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("failed to read workbook: %w", err)
	}

	rows, err := spreadsheet.ReadAttendanceSheet(bytes.NewReader(content))
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("%w: %v", attendance.ErrWorkbookInvalid, err)
	}
	if rows == nil {
		return attendance.ImportSummary{}, attendance.ErrWorkbookEmpty
	}
	if len(rows) == 0 {
		return attendance.ImportSummary{}, attendance.ErrWorkbookNoData
	}

	batchID := uuid.New().String()

	if s.archiveService != nil {
		path, err := s.archiveService.ArchiveWorkbook(ctx, batchID, filename, bytes.NewReader(content))
		if err != nil {
			slog.Warn("failed to archive workbook", "batchId", batchID, "filename", filename, "error", err)
		} else {
			slog.Info("workbook archived", "batchId", batchID, "path", path)
		}
	}

	importRows := make([]attendance.ImportRow, 0, len(rows))
	for _, row := range rows {
		importRows = append(importRows, attendance.ImportRow{
			RowNumber:    row.Number,
			EmployeeCode: row.EmployeeCode,
			Date:         row.Date,
			InTime:       row.InTime,
			OutTime:      row.OutTime,
		})
	}

	return s.importBatch(ctx, batchID, importRows)
}

// ImportRows implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ImportRows(ctx context.Context, rows []attendance.ImportRow) (attendance.ImportSummary, error) {
	return s.importBatch(ctx, uuid.New().String(), rows)
}

// importBatch writes one upload in a single transaction. Rows that fail
// validation are reported in the summary without touching the database, so
// they never poison the batch. Any database error aborts the whole batch.
func (s *AttendanceServiceImpl) importBatch(ctx context.Context, batchID string, rows []attendance.ImportRow) (attendance.ImportSummary, error) {
	summary := attendance.ImportSummary{
		BatchID:   batchID,
		TotalRows: len(rows),
		Errors:    []string{},
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, row := range rows {
			if row.IsBlank() {
				continue
			}

			norm, err := row.Normalize()
			if err != nil {
				summary.ErrorCount++
				if len(summary.Errors) < attendance.MaxSampleErrors {
					summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: %v", row.RowNumber, err))
				}
				continue
			}

			emp, created, err := s.employeeRepo.GetOrCreateByCode(txCtx, norm.EmployeeCode, employee.DisplayNameForCode(norm.EmployeeCode))
			if err != nil {
				return err
			}
			if created {
				summary.CreatedEmployees++
				slog.Info("auto-provisioned employee",
					"employeeCode", emp.EmployeeCode,
					"name", emp.Name,
					"batchId", batchID,
				)
			}

			eval := attendance.Evaluate(norm.Date.Weekday(), norm.InTime, norm.OutTime)
			_, err = s.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				EmployeeID:    emp.ID,
				Date:          norm.Date,
				InTime:        norm.InTime,
				OutTime:       norm.OutTime,
				WorkedHours:   eval.WorkedHours,
				ExpectedHours: eval.ExpectedHours,
				IsLeave:       eval.IsLeave,
			})
			if err != nil {
				return err
			}
			summary.SuccessCount++
		}
		return nil
	})
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("failed to import attendance batch: %w", err)
	}

	slog.Info("attendance batch imported",
		"batchId", batchID,
		"totalRows", summary.TotalRows,
		"successCount", summary.SuccessCount,
		"errorCount", summary.ErrorCount,
		"createdEmployees", summary.CreatedEmployees,
	)

	return summary, nil
}

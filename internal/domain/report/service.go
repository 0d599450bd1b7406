package report

import "context"

// ReportService exposes the month-level productivity summaries.
type ReportService interface {
	EmployeeSummary(ctx context.Context, employeeID int64, month string) (EmployeeSummaryResponse, error)
	MonthlySummary(ctx context.Context, month string) (MonthlySummaryResponse, error)
}

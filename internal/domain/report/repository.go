package report

import (
	"context"
	"time"
)

// ReportRepository defines the read-only aggregate queries.
type ReportRepository interface {
	// GetEmployeeMonthlyAggregates sums a single employee's month.
	// A month without records yields zero aggregates, not an error.
	GetEmployeeMonthlyAggregates(ctx context.Context, employeeID int64, start, end time.Time) (MonthlyAggregates, error)

	// GetMonthlyAggregates sums the month per employee, one row per
	// employee with at least one attendance record, ordered by employee
	// code.
	GetMonthlyAggregates(ctx context.Context, start, end time.Time) ([]MonthlyAggregates, error)
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetEmployeeMonthlyAggregates implements report.ReportRepository.
// Expected hours count only non-leave days so that leave days reduce the
// denominator of the productivity ratio.
func (r *reportRepository) GetEmployeeMonthlyAggregates(ctx context.Context, employeeID int64, start, end time.Time) (report.MonthlyAggregates, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN is_leave THEN 0 ELSE expected_hours END), 0) AS expected_hours,
			COALESCE(SUM(worked_hours), 0)                                      AS actual_hours,
			COALESCE(COUNT(*) FILTER (WHERE is_leave), 0)                       AS leaves_used
		FROM attendance
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
	`

	var agg report.MonthlyAggregates
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&agg.ExpectedHours, &agg.ActualHours, &agg.LeavesUsed)
	if err != nil {
		return report.MonthlyAggregates{}, fmt.Errorf("failed to aggregate employee month: %w", err)
	}

	return agg, nil
}

// GetMonthlyAggregates implements report.ReportRepository. One row per
// employee with at least one attendance record in the month, ordered by
// employee code.
func (r *reportRepository) GetMonthlyAggregates(ctx context.Context, start, end time.Time) ([]report.MonthlyAggregates, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.employee_code,
			COALESCE(SUM(CASE WHEN a.is_leave THEN 0 ELSE a.expected_hours END), 0) AS expected_hours,
			COALESCE(SUM(a.worked_hours), 0)                                        AS actual_hours,
			COALESCE(COUNT(*) FILTER (WHERE a.is_leave), 0)                         AS leaves_used
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1
		  AND a.date < $2
		GROUP BY e.employee_code
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []report.MonthlyAggregates
	for rows.Next() {
		var agg report.MonthlyAggregates
		if err := rows.Scan(&agg.EmployeeCode, &agg.ExpectedHours, &agg.ActualHours, &agg.LeavesUsed); err != nil {
			return nil, fmt.Errorf("failed to scan monthly aggregates: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly aggregates: %w", err)
	}

	return aggregates, nil
}

package report

import (
	"context"
	"fmt"
	"math"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/pkg/utils"
)

type ReportServiceImpl struct {
	reportRepo   report.ReportRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(reportRepo report.ReportRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
	}
}

// EmployeeSummary implements report.ReportService.
func (s *ReportServiceImpl) EmployeeSummary(ctx context.Context, employeeID int64, month string) (report.EmployeeSummaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return report.EmployeeSummaryResponse{}, err
	}

	start, end, err := utils.MonthRange(month)
	if err != nil {
		return report.EmployeeSummaryResponse{}, err
	}

	agg, err := s.reportRepo.GetEmployeeMonthlyAggregates(ctx, employeeID, start, end)
	if err != nil {
		return report.EmployeeSummaryResponse{}, fmt.Errorf("failed to aggregate employee month: %w", err)
	}

	return report.EmployeeSummaryResponse{
		EmployeeID:    employeeID,
		Month:         month,
		ExpectedHours: agg.ExpectedHours,
		ActualHours:   agg.ActualHours,
		LeavesUsed:    agg.LeavesUsed,
		Productivity:  Productivity(agg.ActualHours, agg.ExpectedHours),
	}, nil
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, month string) (report.MonthlySummaryResponse, error) {
	start, end, err := utils.MonthRange(month)
	if err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	aggs, err := s.reportRepo.GetMonthlyAggregates(ctx, start, end)
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to aggregate month: %w", err)
	}

	resp := report.MonthlySummaryResponse{
		Month: month,
		Rows:  make([]report.MonthlySummaryRow, 0, len(aggs)),
	}
	for _, agg := range aggs {
		resp.Rows = append(resp.Rows, report.MonthlySummaryRow{
			EmployeeCode:  agg.EmployeeCode,
			Month:         month,
			ExpectedHours: agg.ExpectedHours,
			WorkedHours:   agg.ActualHours,
			LeavesUsed:    agg.LeavesUsed,
			Productivity:  Productivity(agg.ActualHours, agg.ExpectedHours),
		})
	}
	resp.TotalEmployees = len(resp.Rows)

	return resp, nil
}

// Productivity is actual over expected as a percentage, rounded to two
// decimals. A month with no expected hours reports 0, not a division error.
func Productivity(actual, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return math.Round(actual/expected*10000) / 100
}

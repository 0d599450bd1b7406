package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
)

// AttendanceJobs fills attendance gaps for every known employee so the
// month-level reports stay complete without a manual gap-fill call.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	employeeRepo  employee.EmployeeRepository
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, employeeRepo employee.EmployeeRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		employeeRepo:  employeeRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, hour int) {
	scheduler.AddDailyJob("fill_missing_attendance", hour, j.FillMissingAttendance)
}

// FillMissingAttendance inserts leave records for every day of the current
// month that has no attendance yet, per employee. Days already recorded are
// left alone.
func (j *AttendanceJobs) FillMissingAttendance(ctx context.Context) error {
	month := time.Now().UTC().Format("2006-01")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	totalInserted := 0
	for _, emp := range employees {
		resp, err := j.attendanceSvc.FillMissing(ctx, attendance.GapFillRequest{
			EmployeeID: emp.ID,
			Month:      month,
		})
		if err != nil {
			slog.Error("failed to fill attendance gaps",
				"employeeId", emp.ID,
				"employeeCode", emp.EmployeeCode,
				"month", month,
				"error", err)
			continue
		}
		totalInserted += resp.InsertedLeaves
	}

	slog.Info("attendance gaps filled", "month", month, "insertedLeaves", totalInserted, "employees", len(employees))
	return nil
}

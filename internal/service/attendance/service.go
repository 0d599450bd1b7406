package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/pkg/utils"
	"github.com/attendly/attendly-backend-go/internal/repository/postgresql"
	"github.com/attendly/attendly-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	archiveService file.ArchiveService
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	archiveService file.ArchiveService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		archiveService: archiveService,
	}
}

// ListDaily implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListDaily(ctx context.Context, employeeID int64, month string) (attendance.DailyAttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	start, end, err := utils.MonthRange(month)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.DailyAttendanceResponse{
		EmployeeID: employeeID,
		Month:      month,
		TotalDays:  len(records),
		Records:    make([]attendance.DailyRecordResponse, 0, len(records)),
	}
	for _, att := range records {
		day := att.Date.Weekday()
		resp.Records = append(resp.Records, attendance.DailyRecordResponse{
			Date:          att.Date.Format("2006-01-02"),
			Day:           utils.DayName(day),
			InTime:        att.InTime,
			OutTime:       att.OutTime,
			WorkedHours:   att.WorkedHours,
			ExpectedHours: att.ExpectedHours,
			Status:        attendance.StatusFor(day, att.IsLeave),
		})
	}

	return resp, nil
}

// FillMissing implements attendance.AttendanceService. The whole month is
// processed in one transaction; an infrastructure failure rolls every
// synthetic record back.
func (s *AttendanceServiceImpl) FillMissing(ctx context.Context, req attendance.GapFillRequest) (attendance.GapFillResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GapFillResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.GapFillResponse{}, err
	}

	start, end, err := utils.MonthRange(req.Month)
	if err != nil {
		return attendance.GapFillResponse{}, err
	}

	inserted := 0
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
			day := date.Weekday()
			if day == time.Sunday {
				continue
			}

			zero := 0.0
			created, err := s.attendanceRepo.InsertLeaveIfMissing(txCtx, attendance.Attendance{
				EmployeeID:    req.EmployeeID,
				Date:          date,
				WorkedHours:   &zero,
				ExpectedHours: attendance.ExpectedHours(day),
				IsLeave:       true,
			})
			if err != nil {
				return err
			}
			if created {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return attendance.GapFillResponse{}, fmt.Errorf("failed to fill missing attendance: %w", err)
	}

	return attendance.GapFillResponse{
		EmployeeID:     req.EmployeeID,
		Month:          req.Month,
		InsertedLeaves: inserted,
	}, nil
}

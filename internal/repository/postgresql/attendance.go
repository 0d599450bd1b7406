package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique constraint
// on (employee_id, date) makes re-uploads overwrite in place.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, in_time, out_time, worked_hours, expected_hours, is_leave)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			in_time        = EXCLUDED.in_time,
			out_time       = EXCLUDED.out_time,
			worked_hours   = EXCLUDED.worked_hours,
			expected_hours = EXCLUDED.expected_hours,
			is_leave       = EXCLUDED.is_leave,
			updated_at     = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.InTime,
		att.OutTime,
		att.WorkedHours,
		att.ExpectedHours,
		att.IsLeave,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// InsertLeaveIfMissing implements attendance.AttendanceRepository.
func (r *attendanceRepository) InsertLeaveIfMissing(ctx context.Context, att attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, in_time, out_time, worked_hours, expected_hours, is_leave)
		VALUES ($1, $2, NULL, NULL, $3, $4, TRUE)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, att.EmployeeID, att.Date, att.WorkedHours, att.ExpectedHours)
	if err != nil {
		return false, fmt.Errorf("failed to insert leave record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, in_time::text, out_time::text,
		       worked_hours, expected_hours, is_leave, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.InTime, &att.OutTime,
			&att.WorkedHours, &att.ExpectedHours, &att.IsLeave, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

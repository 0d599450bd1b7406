package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes one attendance record keyed by (employee_id, date).
	// An existing record for the same key is overwritten in place; the
	// store's unique constraint makes the operation atomic.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// InsertLeaveIfMissing inserts a synthetic leave record unless one
	// already exists for (employee_id, date). Reports whether a row was
	// actually inserted.
	InsertLeaveIfMissing(ctx context.Context, att Attendance) (bool, error)

	// ListByEmployeeAndRange returns the employee's records with
	// start <= date < end, ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)
}

package attendance

import (
	"time"
)

// Attendance is one record per (employee, date). Exclusivity is enforced
// by a unique constraint on (employee_id, date) in the store; the
// application never needs a check-then-insert cycle.
type Attendance struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	InTime        *string // "HH:MM:SS", nil when absent
	OutTime       *string
	WorkedHours   *float64
	ExpectedHours float64
	IsLeave       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package attendance

import (
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/utils"
)

// Day statuses shown on the dashboard.
const (
	StatusPresent = "Present"
	StatusLeave   = "Leave"
	StatusOff     = "Off"
)

// Evaluation is the rule engine output for one employee-day.
type Evaluation struct {
	ExpectedHours float64
	IsLeave       bool
	WorkedHours   *float64
}

// ExpectedHours returns the contracted hours for a weekday:
// Sunday is off, Saturday is a half day, Monday-Friday are full days.
func ExpectedHours(day time.Weekday) float64 {
	switch day {
	case time.Sunday:
		return 0
	case time.Saturday:
		return 4
	default:
		return 8.5
	}
}

// Evaluate computes expected hours, leave status and worked hours for a
// weekday and optional in/out times. It is total over its input domain:
// unparseable times count as missing. Sunday is "Off", never "Leave", but
// hours worked on a Sunday still count. Worked hours wrap by +24h when the
// out time falls past midnight.
func Evaluate(day time.Weekday, inTime, outTime *string) Evaluation {
	eval := Evaluation{ExpectedHours: ExpectedHours(day)}

	if inTime == nil || outTime == nil {
		eval.IsLeave = day != time.Sunday
		return eval
	}

	in, inErr := utils.ParseClock(*inTime)
	out, outErr := utils.ParseClock(*outTime)
	if inErr != nil || outErr != nil {
		eval.IsLeave = day != time.Sunday
		return eval
	}

	worked := (out - in).Hours()
	if worked < 0 {
		worked += 24
	}
	eval.WorkedHours = &worked
	return eval
}

// StatusFor maps a weekday and leave flag to the display status.
func StatusFor(day time.Weekday, isLeave bool) string {
	switch {
	case day == time.Sunday:
		return StatusOff
	case isLeave:
		return StatusLeave
	default:
		return StatusPresent
	}
}

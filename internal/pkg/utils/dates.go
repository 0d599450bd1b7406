package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel serial 25569 is 1970-01-01, the unix epoch.
const excelUnixEpochSerial = 25569

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// DayName returns the English weekday label used by the dashboard.
func DayName(d time.Weekday) string {
	return d.String()
}

// ExcelDate converts a raw spreadsheet cell to a calendar date (UTC,
// midnight). It accepts Excel serial numbers, "YYYY-MM-DD" and
// "DD/MM/YYYY" strings.
func ExcelDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		seconds := math.Round((serial - excelUnixEpochSerial) * 86400)
		t := time.Unix(int64(seconds), 0).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	for _, layout := range []string{"2006-01-02", "02/01/2006", "2006/01/02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date value: %q", raw)
}

// NormalizeClock converts a raw in/out cell to a zero-padded "HH:MM:SS"
// time-of-day string. Accepted inputs: Excel fractional-day numbers,
// "H:MM" / "H:MM:SS" strings, and bare hour integers 0-23. Anything else
// is treated as a missing time and yields nil, never an error.
func NormalizeClock(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if m := clockRegex.FindStringSubmatch(value); m != nil {
		hours, _ := strconv.Atoi(m[1])
		seconds := m[3]
		if seconds == "" {
			seconds = "00"
		}
		formatted := fmt.Sprintf("%02d:%s:%s", hours, m[2], seconds)
		return &formatted
	}

	if hours, err := strconv.Atoi(value); err == nil {
		if hours >= 0 && hours < 24 {
			formatted := fmt.Sprintf("%02d:00:00", hours)
			return &formatted
		}
		return nil
	}

	// A valid fractional-day time is strictly below one full day; anything
	// at or past 1.0 would format beyond 24 hours and is not a time of day.
	if fraction, err := strconv.ParseFloat(value, 64); err == nil && fraction >= 0 && fraction < 1 {
		totalSeconds := fraction * 86400
		hours := int(totalSeconds) / 3600
		minutes := (int(totalSeconds) % 3600) / 60
		seconds := int(totalSeconds) % 60
		formatted := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
		return &formatted
	}

	return nil
}

// ParseClock parses a normalized "HH:MM:SS" string into a duration since
// midnight.
func ParseClock(clock string) (time.Duration, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", clock)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// MonthRange converts a "YYYY-MM" string to the half-open interval
// [first day of month, first day of next month).
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return start, start.AddDate(0, 1, 0), nil
}

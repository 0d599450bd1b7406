package attendance

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestExpectedHours(t *testing.T) {
	cases := []struct {
		day  time.Weekday
		want float64
	}{
		{time.Sunday, 0},
		{time.Monday, 8.5},
		{time.Tuesday, 8.5},
		{time.Wednesday, 8.5},
		{time.Thursday, 8.5},
		{time.Friday, 8.5},
		{time.Saturday, 4},
	}
	for _, c := range cases {
		if got := ExpectedHours(c.day); got != c.want {
			t.Errorf("ExpectedHours(%s) = %v, want %v", c.day, got, c.want)
		}
	}
}

func TestEvaluateMissingTimes(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		eval := Evaluate(day, nil, nil)

		wantLeave := day != time.Sunday
		if eval.IsLeave != wantLeave {
			t.Errorf("Evaluate(%s, nil, nil).IsLeave = %v, want %v", day, eval.IsLeave, wantLeave)
		}
		if eval.WorkedHours != nil {
			t.Errorf("Evaluate(%s, nil, nil).WorkedHours = %v, want nil", day, *eval.WorkedHours)
		}
		if eval.ExpectedHours != ExpectedHours(day) {
			t.Errorf("Evaluate(%s).ExpectedHours = %v", day, eval.ExpectedHours)
		}
	}
}

func TestEvaluateOneTimeMissing(t *testing.T) {
	eval := Evaluate(time.Monday, strPtr("09:00:00"), nil)
	if !eval.IsLeave {
		t.Error("missing out time on Monday should be leave")
	}
	eval = Evaluate(time.Saturday, nil, strPtr("13:00:00"))
	if !eval.IsLeave {
		t.Error("missing in time on Saturday should be leave")
	}
}

func TestEvaluateWorkedHours(t *testing.T) {
	eval := Evaluate(time.Monday, strPtr("09:00:00"), strPtr("17:30:00"))
	if eval.IsLeave {
		t.Fatal("complete times should not be leave")
	}
	if eval.WorkedHours == nil || *eval.WorkedHours != 8.5 {
		t.Fatalf("WorkedHours = %v, want 8.5", eval.WorkedHours)
	}
}

func TestEvaluateOvernightShift(t *testing.T) {
	eval := Evaluate(time.Friday, strPtr("22:00:00"), strPtr("06:00:00"))
	if eval.IsLeave {
		t.Fatal("overnight shift should not be leave")
	}
	if eval.WorkedHours == nil || *eval.WorkedHours != 8 {
		t.Fatalf("WorkedHours = %v, want 8 (22:00 to 06:00 wraps past midnight)", eval.WorkedHours)
	}
}

func TestEvaluateSundayNeverLeave(t *testing.T) {
	// Sunday is "Off" even with no recorded times.
	eval := Evaluate(time.Sunday, nil, nil)
	if eval.IsLeave {
		t.Error("Sunday must not be marked as leave")
	}
	if eval.ExpectedHours != 0 {
		t.Errorf("Sunday expected hours = %v, want 0", eval.ExpectedHours)
	}
}

func TestEvaluateSundayWorkCounts(t *testing.T) {
	// Hours worked on a Sunday still count toward the month even though
	// the day expects none and shows as "Off".
	eval := Evaluate(time.Sunday, strPtr("09:00:00"), strPtr("17:00:00"))
	if eval.IsLeave {
		t.Error("Sunday must not be marked as leave")
	}
	if eval.WorkedHours == nil || *eval.WorkedHours != 8 {
		t.Fatalf("WorkedHours = %v, want 8", eval.WorkedHours)
	}
	if eval.ExpectedHours != 0 {
		t.Errorf("Sunday expected hours = %v, want 0", eval.ExpectedHours)
	}
	if got := StatusFor(time.Sunday, eval.IsLeave); got != StatusOff {
		t.Errorf("StatusFor = %q, want %q", got, StatusOff)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		day     time.Weekday
		isLeave bool
		want    string
	}{
		{time.Sunday, false, StatusOff},
		{time.Sunday, true, StatusOff},
		{time.Monday, true, StatusLeave},
		{time.Monday, false, StatusPresent},
		{time.Saturday, true, StatusLeave},
	}
	for _, c := range cases {
		if got := StatusFor(c.day, c.isLeave); got != c.want {
			t.Errorf("StatusFor(%s, %v) = %q, want %q", c.day, c.isLeave, got, c.want)
		}
	}
}

func TestNormalizeRow(t *testing.T) {
	row := ImportRow{RowNumber: 2, EmployeeCode: "E001", Date: "2024-01-15", InTime: "9:00", OutTime: "17:30"}
	norm, err := row.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if norm.EmployeeCode != "E001" {
		t.Errorf("EmployeeCode = %q", norm.EmployeeCode)
	}
	if norm.Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("Date = %s", norm.Date.Format("2006-01-02"))
	}
	if norm.InTime == nil || *norm.InTime != "09:00:00" {
		t.Errorf("InTime = %v, want 09:00:00", norm.InTime)
	}
	if norm.OutTime == nil || *norm.OutTime != "17:30:00" {
		t.Errorf("OutTime = %v, want 17:30:00", norm.OutTime)
	}
}

func TestNormalizeRowErrors(t *testing.T) {
	if _, err := (ImportRow{Date: "2024-01-15"}).Normalize(); err == nil {
		t.Error("missing employee code should error")
	}
	if _, err := (ImportRow{EmployeeCode: "E001"}).Normalize(); err == nil {
		t.Error("missing date should error")
	}
	if _, err := (ImportRow{EmployeeCode: "E001", Date: "garbage"}).Normalize(); err == nil {
		t.Error("unparseable date should error")
	}
}

func TestNormalizeRowBadTimesAreMissing(t *testing.T) {
	row := ImportRow{EmployeeCode: "E001", Date: "2024-01-15", InTime: "soon", OutTime: "later"}
	norm, err := row.Normalize()
	if err != nil {
		t.Fatalf("unparseable times must not error: %v", err)
	}
	if norm.InTime != nil || norm.OutTime != nil {
		t.Error("unparseable times should normalize to nil")
	}
}

func TestIsBlank(t *testing.T) {
	if !(ImportRow{InTime: "  "}).IsBlank() {
		t.Error("whitespace-only row should be blank")
	}
	if (ImportRow{EmployeeCode: "E001"}).IsBlank() {
		t.Error("row with a code is not blank")
	}
}

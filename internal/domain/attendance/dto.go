package attendance

import (
	"strings"
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/utils"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// ImportRow is one raw spreadsheet row as decoded from the workbook,
// before any normalization.
type ImportRow struct {
	RowNumber    int
	EmployeeCode string
	Date         string
	InTime       string
	OutTime      string
}

// IsBlank reports whether every cell of the row is empty. Blank rows are
// skipped without counting as success or failure.
func (r ImportRow) IsBlank() bool {
	return strings.TrimSpace(r.EmployeeCode) == "" &&
		strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.InTime) == "" &&
		strings.TrimSpace(r.OutTime) == ""
}

// NormalizedRow is an ImportRow after date/time normalization.
type NormalizedRow struct {
	EmployeeCode string
	Date         time.Time
	InTime       *string
	OutTime      *string
}

// Normalize validates the required cells and converts the spreadsheet
// values. Unparseable in/out times are treated as missing, not as errors.
func (r ImportRow) Normalize() (NormalizedRow, error) {
	var errs validator.ValidationErrors

	code := strings.TrimSpace(r.EmployeeCode)
	if code == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "missing employee ID",
		})
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "missing date",
		})
	}
	if len(errs) > 0 {
		return NormalizedRow{}, errs
	}

	date, err := utils.ExcelDate(r.Date)
	if err != nil {
		return NormalizedRow{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "invalid date format: " + r.Date,
		}}
	}

	return NormalizedRow{
		EmployeeCode: code,
		Date:         date,
		InTime:       utils.NormalizeClock(r.InTime),
		OutTime:      utils.NormalizeClock(r.OutTime),
	}, nil
}

// ImportSummary reports the outcome of one upload batch. Row-level errors
// are embedded (first 10) so partial success stays visible to the caller.
type ImportSummary struct {
	BatchID          string   `json:"batchId"`
	TotalRows        int      `json:"totalRows"`
	SuccessCount     int      `json:"successCount"`
	ErrorCount       int      `json:"errorCount"`
	Errors           []string `json:"errors"`
	CreatedEmployees int      `json:"createdEmployees"`
}

// MaxSampleErrors caps the error list embedded in an ImportSummary.
const MaxSampleErrors = 10

// DailyRecordResponse is one row of the per-employee daily view.
type DailyRecordResponse struct {
	Date          string   `json:"date"`
	Day           string   `json:"day"`
	InTime        *string  `json:"inTime"`
	OutTime       *string  `json:"outTime"`
	WorkedHours   *float64 `json:"workedHours"`
	ExpectedHours float64  `json:"expectedHours"`
	Status        string   `json:"status"`
}

type DailyAttendanceResponse struct {
	EmployeeID int64                 `json:"employeeId"`
	Month      string                `json:"month"`
	TotalDays  int                   `json:"totalDays"`
	Records    []DailyRecordResponse `json:"records"`
}

// GapFillRequest asks for synthetic leave records for every uncovered
// working day of a month.
type GapFillRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Month      string `json:"month"`
}

func (r *GapFillRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GapFillResponse struct {
	EmployeeID     int64  `json:"employeeId"`
	Month          string `json:"month"`
	InsertedLeaves int    `json:"insertedLeaves"`
}

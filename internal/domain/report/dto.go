package report

// EmployeeSummaryResponse aggregates one employee's month.
// ExpectedHours sums only non-leave days; productivity is
// actual/expected*100 rounded to two decimals, 0 when no hours were
// expected.
type EmployeeSummaryResponse struct {
	EmployeeID    int64   `json:"employeeId"`
	Month         string  `json:"month"`
	ExpectedHours float64 `json:"expectedHours"`
	ActualHours   float64 `json:"actualHours"`
	LeavesUsed    int     `json:"leavesUsed"`
	Productivity  float64 `json:"productivity"`
}

// MonthlySummaryRow is one employee's aggregates in the all-employee
// monthly report.
type MonthlySummaryRow struct {
	EmployeeCode  string  `json:"employeeCode"`
	Month         string  `json:"month"`
	ExpectedHours float64 `json:"expectedHours"`
	WorkedHours   float64 `json:"workedHours"`
	LeavesUsed    int     `json:"leavesUsed"`
	Productivity  float64 `json:"productivity"`
}

type MonthlySummaryResponse struct {
	Month          string              `json:"month"`
	TotalEmployees int                 `json:"totalEmployees"`
	Rows           []MonthlySummaryRow `json:"rows"`
}

// MonthlyAggregates is the raw sum row scanned from the store before
// productivity is derived.
type MonthlyAggregates struct {
	EmployeeCode  string
	ExpectedHours float64
	ActualHours   float64
	LeavesUsed    int
}

package employee

import (
	"regexp"
	"strconv"
	"time"
)

// Employee is an identity record. Rows are created implicitly during
// spreadsheet reconciliation when an unseen code appears; they are never
// deleted by this system and the code is immutable once assigned.
type Employee struct {
	ID           int64
	EmployeeCode string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var codePattern = regexp.MustCompile(`^E(\d+)$`)

// DisplayNameForCode derives the placeholder name used when an employee is
// auto-provisioned from an upload. Codes like "E007" become "Employee 7";
// any other code is used verbatim.
func DisplayNameForCode(code string) string {
	if m := codePattern.FindStringSubmatch(code); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return "Employee " + strconv.Itoa(n)
		}
	}
	return code
}

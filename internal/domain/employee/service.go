package employee

import "context"

// EmployeeService exposes the read-side employee operations.
type EmployeeService interface {
	// List returns all known employees ordered by id.
	List(ctx context.Context) (ListEmployeesResponse, error)
}

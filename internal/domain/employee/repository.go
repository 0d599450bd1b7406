package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee ordered by id.
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by surrogate key.
	// Returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetOrCreateByCode resolves an employee code to an identity, creating
	// the row when no employee carries the code yet. The insert relies on
	// the unique constraint on employee_code, so concurrent callers cannot
	// produce duplicates. The second return value reports whether a new
	// employee was provisioned by this call.
	GetOrCreateByCode(ctx context.Context, code, name string) (Employee, bool, error)
}

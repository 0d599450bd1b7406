package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, name, created_at, updated_at
		FROM employees
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, name, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetOrCreateByCode implements employee.EmployeeRepository. The insert
// races safely against concurrent uploads: ON CONFLICT DO NOTHING returns
// no row when another writer got there first, and the follow-up select
// picks up whichever row won.
func (r *employeeRepository) GetOrCreateByCode(ctx context.Context, code, name string) (employee.Employee, bool, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO employees (employee_code, name)
		VALUES ($1, $2)
		ON CONFLICT (employee_code) DO NOTHING
		RETURNING id, employee_code, name, created_at, updated_at
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, insert, code, name).Scan(&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err == nil {
		return emp, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, false, fmt.Errorf("failed to create employee %q: %w", code, err)
	}

	query := `
		SELECT id, employee_code, name, created_at, updated_at
		FROM employees
		WHERE employee_code = $1
	`
	err = q.QueryRow(ctx, query, code).Scan(&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("failed to get employee by code %q: %w", code, err)
	}

	return emp, false, nil
}

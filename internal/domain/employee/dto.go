package employee

// EmployeeResponse is the wire shape consumed by the dashboard.
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
}

// ListEmployeesResponse wraps the employee list with its size.
type ListEmployeesResponse struct {
	Total     int                `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
	}
}

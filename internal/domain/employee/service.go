package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	ListEmployees(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee soft deletes an employee
	DeactivateEmployee(ctx context.Context, id string) error

	// DeleteEmployeePermanently removes the employee and is not reversible
	DeleteEmployeePermanently(ctx context.Context, id string) error

	UpdateHourlyRate(ctx context.Context, id string, req UpdateHourlyRateRequest) (EmployeeResponse, error)
}

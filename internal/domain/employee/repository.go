package employee

import "context"

// EmployeeRepository defines data access methods for employees
type EmployeeRepository interface {
	// List retrieves employees; onlyActive filters out soft-deleted ones
	List(ctx context.Context, onlyActive bool) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	GetByDNI(ctx context.Context, dni string) (Employee, error)

	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Deactivate soft deletes an employee (is_active = false)
	Deactivate(ctx context.Context, id string) error

	// HardDelete removes the employee row permanently
	HardDelete(ctx context.Context, id string) error
}

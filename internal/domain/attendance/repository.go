package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, record Record) (Record, error)
	Delete(ctx context.Context, id string) error

	// ListByEmployee retrieves all records of one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListByEmployeeAndRange retrieves records within [start, end] inclusive,
	// oldest first
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// GetLastByEmployee retrieves the most recent record of one employee
	GetLastByEmployee(ctx context.Context, employeeID string) (Record, error)

	// ListToday retrieves today's records across all employees, oldest first
	ListToday(ctx context.Context, dateLocal string) ([]Record, error)
}

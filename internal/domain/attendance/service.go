package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// ListByEmployee returns all records of one employee; when both start and
	// end are non-empty the range filter applies instead
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]RecordResponse, error)

	// GetLastRecord returns the most recent record, used to derive
	// checked-in/checked-out status
	GetLastRecord(ctx context.Context, employeeID string) (RecordResponse, error)

	// ListToday returns today's records across all employees
	ListToday(ctx context.Context) ([]RecordResponse, error)
}

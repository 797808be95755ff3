package attendance

import "time"

// RecordType is the direction of an attendance event.
type RecordType string

const (
	CheckIn  RecordType = "check_in"
	CheckOut RecordType = "check_out"
)

func (t RecordType) Valid() bool {
	return t == CheckIn || t == CheckOut
}

// Record is a single check-in or check-out event. Timestamps are naive
// local time; see internal/pkg/timefmt.
type Record struct {
	ID         string
	EmployeeID string
	Type       RecordType
	Timestamp  time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

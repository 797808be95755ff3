package user

import "time"

// User is an administrative account. The system has no self-service
// registration; users are seeded directly into the database.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package response

import (
	"errors"
	"net/http"

	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/auth"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/domain/payroll"
	"github.com/timetrack/attendance-backend-go/internal/domain/user"
	"github.com/timetrack/attendance-backend-go/internal/pkg/timefmt"
	"github.com/timetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "DNI already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "start_date must be before or equal to end_date", nil)
	case errors.Is(err, payroll.ErrMissingDateRange):
		BadRequest(w, "start_date and end_date are required", nil)
	case errors.Is(err, timefmt.ErrInvalidTimestamp):
		BadRequest(w, "Invalid timestamp or date format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

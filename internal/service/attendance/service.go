package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/pkg/timefmt"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ToResponse converts a record into its wire form.
func ToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Type:         string(rec.Type),
		Timestamp:    timefmt.FormatDateTime(rec.Timestamp),
		Notes:        rec.Notes,
		CreatedAt:    timefmt.FormatDateTime(rec.CreatedAt),
		UpdatedAt:    timefmt.FormatDateTime(rec.UpdatedAt),
	}
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, ToResponse(rec))
	}
	return responses
}

// CreateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	// Missing timestamp means "now"
	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := timefmt.ParseTimestamp(req.Timestamp)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		ts = parsed
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       attendance.RecordType(req.Type),
		Timestamp:  ts,
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return ToResponse(created), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, id string, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.Type != nil {
		rec.Type = attendance.RecordType(*req.Type)
	}
	if req.Timestamp != nil {
		ts, err := timefmt.ParseTimestamp(*req.Timestamp)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.Timestamp = ts
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	updated, err := s.attendanceRepo.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return ToResponse(updated), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.RecordResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	if startDate == "" && endDate == "" {
		records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
		return toResponses(records), nil
	}

	start, end, err := ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by range: %w", err)
	}

	return toResponses(records), nil
}

// GetLastRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLastRecord(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetLastByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return ToResponse(rec), nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListToday(ctx, timefmt.FormatDate(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance records: %w", err)
	}

	return toResponses(records), nil
}

// ParseRange validates a start/end date pair and widens the end to the
// last second of its day so the range is inclusive.
func ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := timefmt.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timefmt.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, attendance.ErrInvalidDateRange
	}
	end = end.Add(24*time.Hour - time.Second)
	return start, end, nil
}

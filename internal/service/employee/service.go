package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
	"github.com/timetrack/attendance-backend-go/internal/pkg/timefmt"
	"github.com/timetrack/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		DNI:        emp.DNI,
		HourlyRate: emp.HourlyRate,
		HireDate:   timefmt.FormatDate(emp.HireDate),
		IsActive:   emp.IsActive,
		CreatedAt:  timefmt.FormatDateTime(emp.CreatedAt),
		UpdatedAt:  timefmt.FormatDateTime(emp.UpdatedAt),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := timefmt.ParseDate(req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// DNI check and insert run in one transaction so concurrent creates
	// cannot slip past the uniqueness check
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.employeeRepo.GetByDNI(txCtx, req.DNI); err == nil {
			return employee.ErrDNIExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to check dni uniqueness: %w", err)
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			ID:         uuid.NewString(),
			Name:       req.Name,
			DNI:        req.DNI,
			HourlyRate: decimal.NewFromFloat(req.HourlyRate),
			HireDate:   hireDate,
			IsActive:   true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DNI != nil && *req.DNI != emp.DNI {
		if existing, err := s.employeeRepo.GetByDNI(ctx, *req.DNI); err == nil && existing.ID != id {
			return employee.EmployeeResponse{}, employee.ErrDNIExists
		} else if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni uniqueness: %w", err)
		}
		emp.DNI = *req.DNI
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = decimal.NewFromFloat(*req.HourlyRate)
	}
	if req.HireDate != nil {
		hireDate, err := timefmt.ParseDate(*req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.HireDate = hireDate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}

// DeleteEmployeePermanently implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployeePermanently(ctx context.Context, id string) error {
	return s.employeeRepo.HardDelete(ctx, id)
}

// UpdateHourlyRate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateHourlyRate(ctx context.Context, id string, req employee.UpdateHourlyRateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.HourlyRate = decimal.NewFromFloat(req.HourlyRate)

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update hourly rate: %w", err)
	}

	return toResponse(updated), nil
}

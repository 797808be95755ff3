package payroll

import (
	"context"
	"fmt"

	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/domain/payroll"
	attendanceservice "github.com/timetrack/attendance-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	calculator     *Calculator
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		calculator:     NewCalculator(),
	}
}

// CalculatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculatePayroll(ctx context.Context, employeeID, startDate, endDate string) (payroll.Result, error) {
	if startDate == "" || endDate == "" {
		return payroll.Result{}, payroll.ErrMissingDateRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, err
	}

	start, end, err := attendanceservice.ParseRange(startDate, endDate)
	if err != nil {
		return payroll.Result{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to list attendance records for payroll: %w", err)
	}

	return s.calculator.Calculate(emp, records, startDate, endDate), nil
}

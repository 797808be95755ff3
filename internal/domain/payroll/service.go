package payroll

import "context"

// PayrollService computes worked hours and payment for one employee
// over an inclusive date range.
type PayrollService interface {
	CalculatePayroll(ctx context.Context, employeeID, startDate, endDate string) (Result, error)
}

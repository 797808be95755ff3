package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
)

// EmployeeSummary is the employee snapshot embedded in a payroll result.
type EmployeeSummary struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// DayEntry is one calendar day's worth of paired sessions.
type DayEntry struct {
	Date    string                      `json:"date"`
	Hours   float64                     `json:"hours"`
	Records []attendance.RecordResponse `json:"records"`
}

// Result is a payroll computation over a date range. TotalHours is
// rounded to two decimals and TotalPayment derives from the rounded
// figure, so the printed numbers always reconcile.
type Result struct {
	Employee       EmployeeSummary             `json:"employee"`
	StartDate      string                      `json:"start_date"`
	EndDate        string                      `json:"end_date"`
	TotalHours     float64                     `json:"totalHours"`
	TotalPayment   decimal.Decimal             `json:"totalPayment"`
	DailyBreakdown []DayEntry                  `json:"dailyBreakdown"`
	Records        []attendance.RecordResponse `json:"records"`
}

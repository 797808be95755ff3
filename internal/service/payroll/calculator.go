package payroll

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/domain/payroll"
	"github.com/timetrack/attendance-backend-go/internal/pkg/timefmt"
	attendanceservice "github.com/timetrack/attendance-backend-go/internal/service/attendance"
)

// Calculator pairs check-in/check-out events into sessions and totals
// worked hours. It is a pure computation: no clock reads, no I/O, and
// the same inputs always produce the same result.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes hours and payment for the given records.
//
// Records are grouped by local calendar date and each day is walked
// pairwise: a session exists only when an event is a check_in and the
// next event is a check_out. Unpaired events contribute zero hours and
// are skipped without error, mirroring how the records were captured
// (a missed check-out should not sink the whole report).
//
// Per-day hours are rounded to two decimals for display, but the grand
// total accumulates the unrounded day sums and is rounded once at the
// end. Payment is derived from the rounded total so the printed hours
// and the printed amount always agree.
func (c *Calculator) Calculate(emp employee.Employee, records []attendance.Record, startDate, endDate string) payroll.Result {
	result := payroll.Result{
		Employee: payroll.EmployeeSummary{
			ID:         emp.ID,
			Name:       emp.Name,
			HourlyRate: emp.HourlyRate,
		},
		StartDate:      startDate,
		EndDate:        endDate,
		TotalPayment:   decimal.Zero,
		DailyBreakdown: []payroll.DayEntry{},
		Records:        []attendance.RecordResponse{},
	}

	if len(records) == 0 {
		return result
	}

	byDate := make(map[string][]attendance.Record)
	var dates []string
	for _, rec := range records {
		date := timefmt.FormatDate(rec.Timestamp)
		if _, seen := byDate[date]; !seen {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], rec)
	}
	sort.Strings(dates)

	var totalHours float64
	for _, date := range dates {
		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Timestamp.Before(day[j].Timestamp)
		})

		var dayHours float64
		for i := 0; i+1 < len(day); i += 2 {
			if day[i].Type != attendance.CheckIn || day[i+1].Type != attendance.CheckOut {
				continue
			}
			dayHours += day[i+1].Timestamp.Sub(day[i].Timestamp).Hours()
		}
		totalHours += dayHours

		entry := payroll.DayEntry{
			Date:    date,
			Hours:   round2(dayHours),
			Records: []attendance.RecordResponse{},
		}
		for _, rec := range day {
			entry.Records = append(entry.Records, attendanceservice.ToResponse(rec))
			result.Records = append(result.Records, attendanceservice.ToResponse(rec))
		}
		result.DailyBreakdown = append(result.DailyBreakdown, entry)
	}

	result.TotalHours = round2(totalHours)
	result.TotalPayment = decimal.NewFromFloat(result.TotalHours).Mul(emp.HourlyRate)

	return result
}

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

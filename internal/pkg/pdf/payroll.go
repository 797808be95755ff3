// Package pdf renders payroll results into downloadable PDF reports.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/payroll"
	"github.com/timetrack/attendance-backend-go/internal/pkg/timefmt"
)

var tableWidths = []float64{40, 45, 45, 30}

// RenderPayrollReport renders a payroll result as a one-or-more page
// PDF. The table lists one row per paired session; days that have
// records but no completed pair still appear with their date and zero
// hours so the report accounts for every day in the breakdown.
func RenderPayrollReport(result payroll.Result) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Payroll Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Period: %s to %s", result.StartDate, result.EndDate), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Employee: %s", result.Employee.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Hourly rate: $%s", result.Employee.HourlyRate.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Summary
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total hours: %.2f", result.TotalHours), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total payment: $%s", result.TotalPayment.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if len(result.DailyBreakdown) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 8, "No attendance records found for this period.", "", 1, "L", false, 0, "")
	} else {
		renderTable(pdf, result)
	}

	// Footer
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated at %s", timefmt.FormatDateTime(time.Now())), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payroll pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTable(pdf *fpdf.Fpdf, result payroll.Result) {
	headers := []string{"Date", "Check In", "Check Out", "Hours"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(tableWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range result.DailyBreakdown {
		printed := false
		for i := 0; i+1 < len(day.Records); i += 2 {
			in, out := day.Records[i], day.Records[i+1]
			if in.Type != string(attendance.CheckIn) || out.Type != string(attendance.CheckOut) {
				continue
			}
			tableRow(pdf, dateCell(day.Date, &printed), clockPart(in.Timestamp), clockPart(out.Timestamp), sessionHours(in, out))
		}
		if !printed {
			// Day with records but no completed session
			tableRow(pdf, day.Date, "-", "-", "0.00")
		}
	}

	// Totals row
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(tableWidths[0]+tableWidths[1]+tableWidths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(tableWidths[3], 8, fmt.Sprintf("%.2f", result.TotalHours), "1", 1, "C", false, 0, "")
}

func tableRow(pdf *fpdf.Fpdf, date, in, out, hours string) {
	pdf.CellFormat(tableWidths[0], 7, date, "1", 0, "C", false, 0, "")
	pdf.CellFormat(tableWidths[1], 7, in, "1", 0, "C", false, 0, "")
	pdf.CellFormat(tableWidths[2], 7, out, "1", 0, "C", false, 0, "")
	pdf.CellFormat(tableWidths[3], 7, hours, "1", 1, "C", false, 0, "")
}

// dateCell prints the date only on the first row of each day.
func dateCell(date string, printed *bool) string {
	if *printed {
		return ""
	}
	*printed = true
	return date
}

// clockPart extracts "HH:MM:SS" from a storage-form timestamp.
func clockPart(ts string) string {
	if len(ts) > len(timefmt.DateLayout)+1 {
		return ts[len(timefmt.DateLayout)+1:]
	}
	return ts
}

func sessionHours(in, out attendance.RecordResponse) string {
	tin, err := timefmt.ParseTimestamp(in.Timestamp)
	if err != nil {
		return "0.00"
	}
	tout, err := timefmt.ParseTimestamp(out.Timestamp)
	if err != nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", tout.Sub(tin).Hours())
}

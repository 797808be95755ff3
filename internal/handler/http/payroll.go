package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/timetrack/attendance-backend-go/internal/domain/payroll"
	"github.com/timetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/timetrack/attendance-backend-go/internal/pkg/pdf"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculatePDF(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Calculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.calculate(r)
	if err != nil {
		slog.Error("CalculatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CalculatePDF implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculatePDF(w http.ResponseWriter, r *http.Request) {
	result, err := h.calculate(r)
	if err != nil {
		slog.Error("CalculatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	report, err := pdf.RenderPayrollReport(result)
	if err != nil {
		slog.Error("RenderPayrollReport error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-%s-%s.pdf", result.Employee.ID, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}

func (h *PayrollHandlerImpl) calculate(r *http.Request) (payroll.Result, error) {
	employeeID := chi.URLParam(r, "employeeId")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	return h.payrollService.CalculatePayroll(r.Context(), employeeID, startDate, endDate)
}

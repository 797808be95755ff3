package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	GetLast(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRecord decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.CreateRecord(r.Context(), req)
	if err != nil {
		slog.Error("CreateRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created successfully", rec)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRecord decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.UpdateRecord(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", rec)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("DeleteRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// ListByEmployee implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	// Either both bounds or neither
	if (startDate == "") != (endDate == "") {
		response.BadRequest(w, "start_date and end_date must be provided together", nil)
		return
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		slog.Error("ListByEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetLast implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetLast(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	rec, err := h.attendanceService.GetLastRecord(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListToday(r.Context())
	if err != nil {
		slog.Error("ListToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v3"
)

// maxBodyBytes bounds JSON bodies, which may carry base64 photos.
const maxBodyBytes = 10 << 20

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	shiftService  shift.ShiftService
	reportService report.AttendanceReportService
}

func NewAttendanceHandler(shiftService shift.ShiftService, reportService report.AttendanceReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		shiftService:  shiftService,
		reportService: reportService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req shift.ClockInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.BusinessID = middleware.BusinessID(r.Context())
	req.OutletID, _ = middleware.OutletID(r.Context())

	result, err := h.shiftService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	httplog.SetAttrs(r.Context(), slog.String("shift_id", result.Shift.ID))
	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req shift.ClockOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ShiftID = chi.URLParam(r, "shiftID")
	req.BusinessID = middleware.BusinessID(r.Context())
	req.OutletID, _ = middleware.OutletID(r.Context())
	httplog.SetAttrs(r.Context(), slog.String("shift_id", req.ShiftID))

	result, err := h.shiftService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	req := shift.TodayRequest{BusinessID: middleware.BusinessID(r.Context())}
	if outletID, ok := middleware.OutletID(r.Context()); ok {
		req.OutletID = &outletID
	}

	result, err := h.shiftService.Today(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := shift.ListShiftsRequest{
		BusinessID: middleware.BusinessID(r.Context()),
		OutletID:   outletScope(r),
		StartDate:  queryParam(q.Get("start_date")),
		EndDate:    queryParam(q.Get("end_date")),
		Status:     queryParam(q.Get("status")),
		UserID:     queryParam(q.Get("user_id")),
	}

	if l := q.Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil {
			response.BadRequest(w, "invalid limit parameter", nil)
			return
		}
		req.Limit = limit
	}

	result, err := h.shiftService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.StatsRequest{
		BusinessID: middleware.BusinessID(r.Context()),
		OutletID:   outletScope(r),
		StartDate:  queryParam(q.Get("start_date")),
		EndDate:    queryParam(q.Get("end_date")),
		UserID:     queryParam(q.Get("user_id")),
	}

	result, err := h.reportService.Stats(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

// Report implements AttendanceHandler.
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.ReportRequest{
		BusinessID:    middleware.BusinessID(r.Context()),
		OutletID:      outletScope(r),
		StartDate:     queryParam(q.Get("start_date")),
		EndDate:       queryParam(q.Get("end_date")),
		UserID:        queryParam(q.Get("user_id")),
		EmployeeLimit: q.Get("employee_limit"),
		Granularity:   q.Get("granularity"),
	}

	result, err := h.reportService.Report(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.WarnContext(r.Context(), "failed to decode request body", slog.Any("error", err))
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func outletScope(r *http.Request) *string {
	if id, ok := middleware.OutletID(r.Context()); ok {
		return &id
	}
	return nil
}

func queryParam(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

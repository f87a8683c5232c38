package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SweepAbsent(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) submitEvent(w http.ResponseWriter, r *http.Request, eventType attendance.EventType) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Type = eventType

	result, err := h.attendanceService.SubmitEvent(r.Context(), userID, req, time.Now().UTC())
	if err != nil {
		// A too-late check-in may have locked the day; surface the created
		// ABSENT record with the rejection.
		if errors.Is(err, attendance.ErrCheckInTimePassed) && result.Record != nil {
			response.ErrorWithData(w, http.StatusForbidden, "CHECKIN_TIME_PASSED",
				"The check-in window for today has closed", result.Record)
			return
		}
		response.HandleError(w, err)
		return
	}

	message := "Check-in successful"
	if eventType == attendance.EventCheckOut {
		message = "Check-out successful"
	}
	response.Created(w, message, result.Record)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.submitEvent(w, r, attendance.EventCheckIn)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.submitEvent(w, r, attendance.EventCheckOut)
}

func parseListQuery(r *http.Request) (page, limit int, startDate, endDate, status *string) {
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("start_date"); v != "" {
		startDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		endDate = &v
	}
	if v := q.Get("status"); v != "" {
		status = &v
	}
	return
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page, limit, startDate, endDate, status := parseListQuery(r)
	filter := attendance.MyAttendanceFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Page:      page,
		Limit:     limit,
	}

	result, err := h.attendanceService.GetMyAttendance(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// SweepAbsent implements AttendanceHandler. It runs the same sweep the
// scheduler runs, on demand.
func (h *attendanceHandlerImpl) SweepAbsent(w http.ResponseWriter, r *http.Request) {
	marked, err := h.attendanceService.SweepAutoAbsence(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence sweep completed", map[string]int{"marked_absent": marked})
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit, startDate, endDate, status := parseListQuery(r)

	filter := attendance.AttendanceFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Page:      page,
		Limit:     limit,
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

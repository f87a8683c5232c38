package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/location"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/face"
	"github.com/facetrack/attendance-backend-go/internal/pkg/geo"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	location.GeoFenceRepository
	settingsSvc    settings.SettingsService
	fileService    file.FileService
	matchThreshold float64
	loc            *time.Location
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		EmployeeName:       att.EmployeeName,
		EmployeeDepartment: att.EmployeeDepartment,
		Date:               att.Date.Format("2006-01-02"),
		CheckInTime:        timePtrToString(att.CheckIn),
		CheckOutTime:       timePtrToString(att.CheckOut),
		CheckInLatitude:    att.CheckInLatitude,
		CheckInLongitude:   att.CheckInLongitude,
		CheckOutLatitude:   att.CheckOutLatitude,
		CheckOutLongitude:  att.CheckOutLongitude,
		CheckInImageURL:    att.CheckInImageURL,
		CheckOutImageURL:   att.CheckOutImageURL,
		Status:             att.Status,
		LateMinutes:        att.LateMinutes,
	}
}

// verifyFace runs the biometric gate against the enrolled template.
func (a *AttendanceServiceImpl) verifyFace(emp employee.Employee, captured []float64) error {
	if emp.FaceTemplate == nil {
		return attendance.ErrBiometricNotRegistered
	}

	stored, err := face.Decode(*emp.FaceTemplate)
	if err != nil {
		return fmt.Errorf("failed to decode enrolled face template: %w", err)
	}

	ok, err := face.Matches(face.Descriptor(captured), stored, a.matchThreshold)
	if err != nil {
		return fmt.Errorf("failed to compare face descriptors: %w", err)
	}
	if !ok {
		return attendance.ErrFaceNotRecognized
	}

	return nil
}

// verifyLocation runs the geofence gate. No configured fence at all is a
// setup problem and reported as such, not as "out of range".
func (a *AttendanceServiceImpl) verifyLocation(ctx context.Context, lat, lon float64) error {
	fences, err := a.GeoFenceRepository.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active geofences: %w", err)
	}

	if len(fences) == 0 {
		return attendance.ErrNoLocationConfigured
	}

	geoFences := make([]geo.Fence, 0, len(fences))
	for _, f := range fences {
		geoFences = append(geoFences, geo.Fence{
			Latitude:     f.Latitude,
			Longitude:    f.Longitude,
			RadiusMeters: f.RadiusMeters,
		})
	}

	if !geo.IsWithinAny(lat, lon, geoFences) {
		return attendance.ErrNotInAllowedLocation
	}

	return nil
}

// SubmitEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmitEvent(ctx context.Context, employeeID string, req attendance.EventRequest, at time.Time) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	if !emp.IsActive {
		return attendance.EventResponse{}, employee.ErrEmployeeNotFound
	}

	if err := a.verifyFace(emp, req.Descriptor); err != nil {
		return attendance.EventResponse{}, err
	}

	if err := a.verifyLocation(ctx, *req.Latitude, *req.Longitude); err != nil {
		return attendance.EventResponse{}, err
	}

	activeSettings, err := a.settingsSvc.ResolveActive(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	date := attendance.DayOf(at, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	state := attendance.StateOf(existing)

	switch req.Type {
	case attendance.EventCheckIn:
		return a.submitCheckIn(ctx, employeeID, req, at, date, state, activeSettings)
	case attendance.EventCheckOut:
		return a.submitCheckOut(ctx, employeeID, req, at, date, state)
	default:
		return attendance.EventResponse{}, fmt.Errorf("unknown event type %q", req.Type)
	}
}

func (a *AttendanceServiceImpl) submitCheckIn(ctx context.Context, employeeID string, req attendance.EventRequest, at time.Time, date time.Time, state attendance.State, s settings.Settings) (attendance.EventResponse, error) {
	cls, err := attendance.Classify(at, s, a.loc)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	decision, decisionErr := attendance.DecideCheckIn(state, cls, s.AutoMarkAbsentEnabled)

	switch {
	case decision.CreateRecord:
		var imageURL *string
		if req.ImageData != nil {
			url, err := a.fileService.UploadAttendanceSnapshot(ctx, employeeID, date, string(attendance.EventCheckIn), *req.ImageData)
			if err != nil {
				return attendance.EventResponse{}, err
			}
			imageURL = &url
		}

		checkIn := at.UTC()
		rec := attendance.Attendance{
			EmployeeID:       employeeID,
			Date:             date,
			CheckIn:          &checkIn,
			CheckInLatitude:  req.Latitude,
			CheckInLongitude: req.Longitude,
			CheckInImageURL:  imageURL,
			Status:           cls.Status,
		}
		if cls.Status == attendance.StatusLate {
			lateBy := cls.LateByMinutes
			rec.LateMinutes = &lateBy
		}

		created, err := a.AttendanceRepository.Create(ctx, rec)
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				// Lost the race for today's record; report the accurate
				// conflict instead of the stale pre-check.
				return attendance.EventResponse{}, a.conflictForDay(ctx, employeeID, date, attendance.ErrAlreadyCheckedIn)
			}
			return attendance.EventResponse{}, err
		}

		resp := toResponse(created)
		return attendance.EventResponse{Type: attendance.EventCheckIn, Record: &resp}, nil

	case decision.CreateAbsentRecord:
		rec := attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     attendance.StatusAbsent,
		}

		created, err := a.AttendanceRepository.Create(ctx, rec)
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				return attendance.EventResponse{}, a.conflictForDay(ctx, employeeID, date, decisionErr)
			}
			return attendance.EventResponse{}, err
		}

		// The event is still rejected; the created ABSENT record rides
		// along so the caller can show what locked the day.
		resp := toResponse(created)
		return attendance.EventResponse{Type: attendance.EventCheckIn, Record: &resp}, decisionErr

	default:
		return attendance.EventResponse{}, decisionErr
	}
}

func (a *AttendanceServiceImpl) submitCheckOut(ctx context.Context, employeeID string, req attendance.EventRequest, at time.Time, date time.Time, state attendance.State) (attendance.EventResponse, error) {
	if err := attendance.DecideCheckOut(state); err != nil {
		return attendance.EventResponse{}, err
	}

	var imageURL *string
	if req.ImageData != nil {
		url, err := a.fileService.UploadAttendanceSnapshot(ctx, employeeID, date, string(attendance.EventCheckOut), *req.ImageData)
		if err != nil {
			return attendance.EventResponse{}, err
		}
		imageURL = &url
	}

	updated, err := a.AttendanceRepository.SetCheckOut(ctx, employeeID, date, at.UTC(), *req.Latitude, *req.Longitude, imageURL)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			// The conditional update matched nothing: a concurrent writer
			// got there first. Re-derive the precise conflict.
			return attendance.EventResponse{}, a.conflictForDay(ctx, employeeID, date, attendance.ErrAlreadyCheckedOut)
		}
		return attendance.EventResponse{}, err
	}

	resp := toResponse(*updated)
	return attendance.EventResponse{Type: attendance.EventCheckOut, Record: &resp}, nil
}

// conflictForDay re-reads the day's record after a write conflict and maps
// its state to the matching rejection. fallback covers the unlikely case
// where the record disappeared again.
func (a *AttendanceServiceImpl) conflictForDay(ctx context.Context, employeeID string, date time.Time, fallback error) error {
	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return err
	}

	switch attendance.StateOf(rec) {
	case attendance.StateAbsentLocked:
		return attendance.ErrAlreadyMarkedAbsent
	case attendance.StateCheckedIn:
		return attendance.ErrAlreadyCheckedIn
	case attendance.StateComplete:
		return attendance.ErrAlreadyCheckedOut
	default:
		return fallback
	}
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.GetByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

func buildListResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}

// SweepAutoAbsence implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SweepAutoAbsence(ctx context.Context, asOf time.Time) (int, error) {
	activeSettings, err := a.settingsSvc.ResolveActive(ctx)
	if err != nil {
		return 0, err
	}

	due, err := attendance.ShouldAutoMarkAbsent(activeSettings, false, asOf, a.loc)
	if err != nil {
		return 0, err
	}
	if !due {
		return 0, nil
	}

	employees, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	date := attendance.DayOf(asOf, a.loc)
	marked := 0

	for _, emp := range employees {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			slog.Error("Sweep: failed to read attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			// Any record for the day, including an open check-in, exempts
			// the employee from the sweep.
			continue
		}

		rec := attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusAbsent,
		}

		if _, err := a.AttendanceRepository.Create(ctx, rec); err != nil {
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				// A check-in slipped in between the read and the insert.
				continue
			}
			slog.Error("Sweep: failed to mark absent", "employee_id", emp.ID, "error", err)
			continue
		}

		marked++
	}

	return marked, nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	geoFenceRepo location.GeoFenceRepository,
	settingsSvc settings.SettingsService,
	fileService file.FileService,
	matchThreshold float64,
	loc *time.Location,
) attendance.AttendanceService {
	if matchThreshold <= 0 {
		matchThreshold = face.DefaultMatchThreshold
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		GeoFenceRepository:   geoFenceRepo,
		settingsSvc:          settingsSvc,
		fileService:          fileService,
		matchThreshold:       matchThreshold,
		loc:                  loc,
	}
}

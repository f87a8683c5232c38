package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/location"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/face"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZone = time.FixedZone("WIB", 7*3600)

const (
	officeLat = -6.2
	officeLon = 106.8
)

// fakeAttendanceRepo keeps records in memory keyed by (employee, date) and
// mimics the storage conflict semantics of the real repository.
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := dayKey(att.EmployeeID, att.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	stored := att
	f.records[key] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	rec, ok := f.records[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, lat, lon float64, imageURL *string) (*attendance.Attendance, error) {
	rec, ok := f.records[dayKey(employeeID, date)]
	if !ok || rec.CheckIn == nil || rec.CheckOut != nil {
		return nil, attendance.ErrRecordNotFound
	}
	rec.CheckOut = &checkOut
	rec.CheckOutLatitude = &lat
	rec.CheckOutLongitude = &lon
	rec.CheckOutImageURL = imageURL
	rec.UpdatedAt = time.Now()
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) GetByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive && !emp.IsAdmin {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	return f.ListActive(ctx)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) SetFaceTemplate(ctx context.Context, id string, encoded string, imageURL *string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.FaceTemplate = &encoded
	if imageURL != nil {
		emp.FaceImageURL = imageURL
	}
	f.employees[id] = emp
	return nil
}

type fakeGeoFenceRepo struct {
	fences []location.GeoFence
}

func (f *fakeGeoFenceRepo) GetActive(ctx context.Context) ([]location.GeoFence, error) {
	var out []location.GeoFence
	for _, fence := range f.fences {
		if fence.IsActive {
			out = append(out, fence)
		}
	}
	return out, nil
}

func (f *fakeGeoFenceRepo) List(ctx context.Context) ([]location.GeoFence, error) {
	return f.fences, nil
}

func (f *fakeGeoFenceRepo) GetByID(ctx context.Context, id string) (location.GeoFence, error) {
	for _, fence := range f.fences {
		if fence.ID == id {
			return fence, nil
		}
	}
	return location.GeoFence{}, location.ErrGeoFenceNotFound
}

func (f *fakeGeoFenceRepo) Create(ctx context.Context, fence location.GeoFence) (location.GeoFence, error) {
	f.fences = append(f.fences, fence)
	return fence, nil
}

func (f *fakeGeoFenceRepo) Update(ctx context.Context, fence location.GeoFence) (location.GeoFence, error) {
	for i := range f.fences {
		if f.fences[i].ID == fence.ID {
			f.fences[i] = fence
			return fence, nil
		}
	}
	return location.GeoFence{}, location.ErrGeoFenceNotFound
}

type fakeSettingsService struct {
	active settings.Settings
}

func (f *fakeSettingsService) GetActive(ctx context.Context) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) Activate(ctx context.Context, req settings.UpsertSettingsRequest) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) ResolveActive(ctx context.Context) (settings.Settings, error) {
	return f.active, nil
}

type fixture struct {
	svc            attendance.AttendanceService
	attendanceRepo *fakeAttendanceRepo
	employeeRepo   *fakeEmployeeRepo
	settingsSvc    *fakeSettingsService
}

func enrolledTemplate(t *testing.T) string {
	t.Helper()
	encoded, err := face.Encode(face.Descriptor{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	return encoded
}

func matchingDescriptor() []float64 {
	return []float64{0.1, 0.2, 0.3, 0.4}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	template := enrolledTemplate(t)
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Email: "emp1@example.com", Name: "Employee One", IsActive: true, FaceTemplate: &template},
		"emp-2": {ID: "emp-2", Email: "emp2@example.com", Name: "Employee Two", IsActive: true, FaceTemplate: &template},
	}}
	geoFenceRepo := &fakeGeoFenceRepo{fences: []location.GeoFence{
		{ID: "office", Name: "Head Office", Latitude: officeLat, Longitude: officeLon, RadiusMeters: 100, IsActive: true},
	}}
	settingsSvc := &fakeSettingsService{active: settings.Settings{
		CheckInLatestBy:       "09:00",
		PermitDurationMinutes: 30,
		AutoMarkAbsentEnabled: true,
		IsActive:              true,
	}}

	svc := NewAttendanceService(attendanceRepo, employeeRepo, geoFenceRepo, settingsSvc, nil, face.DefaultMatchThreshold, testZone)

	return &fixture{
		svc:            svc,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsSvc:    settingsSvc,
	}
}

func eventReq(eventType attendance.EventType, descriptor []float64, lat, lon float64) attendance.EventRequest {
	return attendance.EventRequest{
		Type:       eventType,
		Descriptor: descriptor,
		Latitude:   &lat,
		Longitude:  &lon,
	}
}

func localTime(hour, minute int) time.Time {
	return time.Date(2026, 8, 29, hour, minute, 0, 0, testZone)
}

func TestSubmitEventCheckInPresent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	resp, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 30))

	require.NoError(t, err)
	require.NotNil(t, resp.Record)
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)
	assert.Nil(t, resp.Record.LateMinutes)
	assert.NotNil(t, resp.Record.CheckInTime)
	assert.Equal(t, "2026-08-29", resp.Record.Date)
}

func TestSubmitEventCheckInLate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	resp, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(9, 20))

	require.NoError(t, err)
	require.NotNil(t, resp.Record)
	assert.Equal(t, attendance.StatusLate, resp.Record.Status)
	require.NotNil(t, resp.Record.LateMinutes)
	assert.Equal(t, 20, *resp.Record.LateMinutes)
}

func TestSubmitEventCheckInTooLateLocksDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	resp, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(10, 0))

	assert.ErrorIs(t, err, attendance.ErrCheckInTimePassed)
	// The rejection still reports the ABSENT record that locked the day.
	require.NotNil(t, resp.Record)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
	assert.Nil(t, resp.Record.CheckInTime)

	// A retry now hits the locked day, not the time check.
	_, err = f.svc.SubmitEvent(ctx, "emp-1", req, localTime(10, 5))
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarkedAbsent)
}

func TestSubmitEventCheckInTooLateWithoutAutoMark(t *testing.T) {
	f := newFixture(t)
	f.settingsSvc.active.AutoMarkAbsentEnabled = false
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	resp, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(10, 0))

	assert.ErrorIs(t, err, attendance.ErrCheckInTimePassed)
	assert.Nil(t, resp.Record)

	// Without auto-mark nothing was written; the same rejection repeats.
	_, err = f.svc.SubmitEvent(ctx, "emp-1", req, localTime(10, 5))
	assert.ErrorIs(t, err, attendance.ErrCheckInTimePassed)
}

func TestSubmitEventBiometricNotRegistered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emp := f.employeeRepo.employees["emp-1"]
	emp.FaceTemplate = nil
	f.employeeRepo.employees["emp-1"] = emp

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 30))

	assert.ErrorIs(t, err, attendance.ErrBiometricNotRegistered)
}

func TestSubmitEventFaceNotRecognized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, []float64{0.9, 0.9, 0.9, 0.9}, officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 30))

	assert.ErrorIs(t, err, attendance.ErrFaceNotRecognized)
}

func TestSubmitEventNoLocationConfigured(t *testing.T) {
	template := enrolledTemplate(t)
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Employee One", IsActive: true, FaceTemplate: &template},
	}}
	settingsSvc := &fakeSettingsService{active: settings.Default()}
	svc := NewAttendanceService(attendanceRepo, employeeRepo, &fakeGeoFenceRepo{}, settingsSvc, nil, face.DefaultMatchThreshold, testZone)

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := svc.SubmitEvent(context.Background(), "emp-1", req, localTime(8, 30))

	assert.ErrorIs(t, err, attendance.ErrNoLocationConfigured)
}

func TestSubmitEventOutsideAllowedLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A kilometer or so north of the office fence.
	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat+0.01, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 30))

	assert.ErrorIs(t, err, attendance.ErrNotInAllowedLocation)
}

func TestSubmitEventDoubleCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 30))
	require.NoError(t, err)

	_, err = f.svc.SubmitEvent(ctx, "emp-1", req, localTime(8, 45))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestSubmitEventCheckOutFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	checkIn := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", checkIn, localTime(8, 30))
	require.NoError(t, err)

	checkOut := eventReq(attendance.EventCheckOut, matchingDescriptor(), officeLat, officeLon)
	resp, err := f.svc.SubmitEvent(ctx, "emp-1", checkOut, localTime(17, 0))
	require.NoError(t, err)
	require.NotNil(t, resp.Record)
	assert.NotNil(t, resp.Record.CheckOutTime)
	// Check-out never rewrites the morning's classification.
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)

	_, err = f.svc.SubmitEvent(ctx, "emp-1", checkOut, localTime(17, 30))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestSubmitEventCheckOutWithoutCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	checkOut := eventReq(attendance.EventCheckOut, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", checkOut, localTime(17, 0))

	assert.ErrorIs(t, err, attendance.ErrMustCheckInFirst)
}

func TestSubmitEventCheckOutOnLockedDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Too-late check-in locks the day with an ABSENT record.
	checkIn := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", checkIn, localTime(10, 0))
	require.ErrorIs(t, err, attendance.ErrCheckInTimePassed)

	checkOut := eventReq(attendance.EventCheckOut, matchingDescriptor(), officeLat, officeLon)
	_, err = f.svc.SubmitEvent(ctx, "emp-1", checkOut, localTime(17, 0))
	assert.ErrorIs(t, err, attendance.ErrMustCheckInFirst)
}

func TestSweepAutoAbsence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// emp-1 checked in on time; emp-2 never showed up.
	checkIn := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err := f.svc.SubmitEvent(ctx, "emp-1", checkIn, localTime(8, 30))
	require.NoError(t, err)

	marked, err := f.svc.SweepAutoAbsence(ctx, localTime(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	date := attendance.DayOf(localTime(10, 0), testZone)
	rec, err := f.attendanceRepo.GetByEmployeeAndDate(ctx, "emp-2", date)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.CheckIn)

	// Second sweep is a no-op.
	marked, err = f.svc.SweepAutoAbsence(ctx, localTime(10, 30))
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestSweepAutoAbsenceBeforeCutoff(t *testing.T) {
	f := newFixture(t)

	marked, err := f.svc.SweepAutoAbsence(context.Background(), localTime(9, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestSweepAutoAbsenceDisabled(t *testing.T) {
	f := newFixture(t)
	f.settingsSvc.active.AutoMarkAbsentEnabled = false

	marked, err := f.svc.SweepAutoAbsence(context.Background(), localTime(12, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestSweepThenCheckInIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SweepAutoAbsence(ctx, localTime(10, 0))
	require.NoError(t, err)

	checkIn := eventReq(attendance.EventCheckIn, matchingDescriptor(), officeLat, officeLon)
	_, err = f.svc.SubmitEvent(ctx, "emp-2", checkIn, localTime(10, 30))
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarkedAbsent)
}

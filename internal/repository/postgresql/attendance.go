package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in, a.check_out,
	a.check_in_latitude, a.check_in_longitude, a.check_in_image_url,
	a.check_out_latitude, a.check_out_longitude, a.check_out_image_url,
	a.status, a.late_minutes,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, att *attendance.Attendance, withEmployee bool) error {
	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckIn, &att.CheckOut,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInImageURL,
		&att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutImageURL,
		&att.Status, &att.LateMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &att.EmployeeName, &att.EmployeeDepartment)
	}
	return row.Scan(dest...)
}

// Create implements attendance.AttendanceRepository. The table carries
// UNIQUE(employee_id, date); ON CONFLICT DO NOTHING turns a concurrent
// duplicate into zero returned rows, surfaced as ErrDuplicateRecord.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in,
			check_in_latitude, check_in_longitude, check_in_image_url,
			status, late_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.CheckInLatitude,
		att.CheckInLongitude,
		att.CheckInImageURL,
		att.Status,
		att.LateMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository. The WHERE clause
// only matches an open record, so a lost race reports ErrRecordNotFound
// rather than overwriting an earlier check-out.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, lat, lon float64, imageURL *string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances a
		SET check_out = $3,
			check_out_latitude = $4,
			check_out_longitude = $5,
			check_out_image_url = $6,
			updated_at = NOW()
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.check_in IS NOT NULL
		  AND a.check_out IS NULL
		RETURNING ` + attendanceColumns + `
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, checkOut, lat, lon, imageURL), &att, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to set check-out: %w", err)
	}

	return &att, nil
}

// GetByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	full := attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Status:     filter.Status,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	return a.List(ctx, full)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`,
			u.name AS employee_name,
			u.department AS employee_department
		FROM attendances a
		LEFT JOIN users u ON u.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, u.name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

package postgresql

import (
	"context"
	"errors"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, working_hours, status, notes, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.WorkingHours,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance_records ORDER BY created_at`)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.queryRecords(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY created_at
	`, employeeID)
}

// ListByDate implements attendance.AttendanceRepository.
// Calendar-day string equality, matching the date column's format.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	return r.queryRecords(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE date = $1
		ORDER BY created_at
	`, date)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, working_hours, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newRecord.ID,
		newRecord.EmployeeID,
		newRecord.Date,
		newRecord.CheckIn,
		newRecord.CheckOut,
		newRecord.WorkingHours,
		newRecord.Status,
		newRecord.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET employee_id = COALESCE($2, employee_id),
			date = COALESCE($3, date),
			check_in = COALESCE($4, check_in),
			check_out = COALESCE($5, check_out),
			working_hours = COALESCE($6, working_hours),
			status = COALESCE($7, status),
			notes = COALESCE($8, notes)
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		id,
		req.EmployeeID,
		req.Date,
		req.CheckIn,
		req.CheckOut,
		req.WorkingHours,
		req.Status,
		req.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return updated, nil
}

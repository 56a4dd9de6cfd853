package attendance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
)

// ListFilter narrows a listing: zero values mean no filtering. EmployeeID
// takes precedence when both are set.
type ListFilter struct {
	EmployeeID string
	Date       string
}

type AttendanceService interface {
	List(ctx context.Context, filter ListFilter) ([]attendance.AttendanceDetailResponse, error)
	Get(ctx context.Context, id string) (attendance.AttendanceDetailResponse, error)
	Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// resolveDetail joins the record with its employee, null when the record
// has no employee or the employee was deleted.
func (s *attendanceServiceImpl) resolveDetail(ctx context.Context, record attendance.Attendance) (attendance.AttendanceDetailResponse, error) {
	detail := attendance.AttendanceDetailResponse{
		AttendanceResponse: attendance.NewAttendanceResponse(record),
	}

	if record.EmployeeID != nil {
		found, err := s.employeeRepo.GetByID(ctx, *record.EmployeeID)
		switch {
		case err == nil:
			employeeResponse := employee.NewEmployeeResponse(found)
			detail.Employee = &employeeResponse
		case !errors.Is(err, employee.ErrEmployeeNotFound):
			return attendance.AttendanceDetailResponse{}, err
		}
	}

	return detail, nil
}

// List implements AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, filter ListFilter) ([]attendance.AttendanceDetailResponse, error) {
	var (
		records []attendance.Attendance
		err     error
	)
	switch {
	case filter.EmployeeID != "":
		records, err = s.attendanceRepo.ListByEmployee(ctx, filter.EmployeeID)
	case filter.Date != "":
		records, err = s.attendanceRepo.ListByDate(ctx, filter.Date)
	default:
		records, err = s.attendanceRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceDetailResponse, 0, len(records))
	for _, record := range records {
		detail, err := s.resolveDetail(ctx, record)
		if err != nil {
			return nil, err
		}
		responses = append(responses, detail)
	}
	return responses, nil
}

// Get implements AttendanceService.
func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceDetailResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceDetailResponse{}, err
	}
	return s.resolveDetail(ctx, found)
}

// Create implements AttendanceService.
func (s *attendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = attendance.StatusPresent
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		WorkingHours: req.WorkingHours,
		Status:       status,
		Notes:        req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(created), nil
}

// Update implements AttendanceService.
func (s *attendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, id, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(updated), nil
}

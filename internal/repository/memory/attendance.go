package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.attendance.list(), nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.attendance.get(id)
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return found, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendance.list() {
		if record.EmployeeID != nil && *record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	return result, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendance.list() {
		if record.Date == date {
			result = append(result, record)
		}
	}
	return result, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if newRecord.CreatedAt.IsZero() {
		newRecord.CreatedAt = time.Now()
	}
	r.store.attendance.put(newRecord.ID, newRecord)
	return newRecord, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.attendance.get(id)
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	if req.EmployeeID != nil {
		found.EmployeeID = req.EmployeeID
	}
	if req.Date != nil {
		found.Date = *req.Date
	}
	if req.CheckIn != nil {
		found.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		found.CheckOut = req.CheckOut
	}
	if req.WorkingHours != nil {
		found.WorkingHours = req.WorkingHours
	}
	if req.Status != nil {
		found.Status = *req.Status
	}
	if req.Notes != nil {
		found.Notes = req.Notes
	}

	r.store.attendance.put(id, found)
	return found, nil
}

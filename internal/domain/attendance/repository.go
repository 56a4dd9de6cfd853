package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context) ([]Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
	Create(ctx context.Context, newRecord Attendance) (Attendance, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
}

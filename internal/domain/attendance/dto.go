package attendance

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   *string   `json:"employeeId"`
	Date         string    `json:"date"`
	CheckIn      *string   `json:"checkIn"`
	CheckOut     *string   `json:"checkOut"`
	WorkingHours *string   `json:"workingHours"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date,
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		WorkingHours: a.WorkingHours,
		Status:       a.Status,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

// AttendanceDetailResponse is the listing shape: the record plus its
// resolved employee, null when the reference dangles.
type AttendanceDetailResponse struct {
	AttendanceResponse
	Employee *employee.EmployeeResponse `json:"employee"`
}

type CreateAttendanceRequest struct {
	EmployeeID   *string `json:"employeeId,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"checkIn,omitempty"`
	CheckOut     *string `json:"checkOut,omitempty"`
	WorkingHours *string `json:"workingHours,omitempty"`
	Status       string  `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, time_off, early_departure",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	EmployeeID   *string `json:"employeeId,omitempty"`
	Date         *string `json:"date,omitempty"`
	CheckIn      *string `json:"checkIn,omitempty"`
	CheckOut     *string `json:"checkOut,omitempty"`
	WorkingHours *string `json:"workingHours,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, time_off, early_departure",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

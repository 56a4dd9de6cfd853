package employee

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	DepartmentID *string   `json:"departmentId"`
	RoleID       *string   `json:"roleId"`
	Status       string    `json:"status"`
	FaceImages   []string  `json:"faceImages"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	faceImages := e.FaceImages
	if faceImages == nil {
		faceImages = []string{}
	}
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		DepartmentID: e.DepartmentID,
		RoleID:       e.RoleID,
		Status:       string(e.Status),
		FaceImages:   faceImages,
		CreatedAt:    e.CreatedAt,
	}
}

// EmployeeDetailResponse is the listing shape: the employee plus its
// resolved department and role. Dangling references resolve to null.
type EmployeeDetailResponse struct {
	EmployeeResponse
	Department *department.DepartmentResponse `json:"department"`
	Role       *role.RoleResponse             `json:"role"`
}

type CreateEmployeeRequest struct {
	EmployeeID   string   `json:"employeeId"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        *string  `json:"phone,omitempty"`
	DepartmentID *string  `json:"departmentId,omitempty"`
	RoleID       *string  `json:"roleId,omitempty"`
	Status       string   `json:"status,omitempty"`
	FaceImages   []string `json:"faceImages,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeID   *string  `json:"employeeId,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	DepartmentID *string  `json:"departmentId,omitempty"`
	RoleID       *string  `json:"roleId,omitempty"`
	Status       *string  `json:"status,omitempty"`
	FaceImages   []string `json:"faceImages,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must not be empty",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

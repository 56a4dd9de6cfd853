package role

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type RoleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DepartmentID *string   `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewRoleResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		DepartmentID: r.DepartmentID,
		CreatedAt:    r.CreatedAt,
	}
}

type CreateRoleRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

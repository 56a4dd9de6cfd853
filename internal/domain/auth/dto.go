package auth

import (
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Authenticated bool               `json:"authenticated"`
	Message       string             `json:"message"`
	User          *user.UserResponse `json:"user,omitempty"`
}

type MeResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *user.UserResponse `json:"user"`
}

type LogoutResponse struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message"`
}

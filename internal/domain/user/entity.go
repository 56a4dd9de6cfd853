package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Email        *string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

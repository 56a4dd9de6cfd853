package auth

import (
	"context"

	"github.com/facetrack/attendance-backend-go/internal/domain/session"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login authenticates the credentials and establishes a new session.
	// All authentication failures surface as ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (user.User, session.Session, error)
	// Logout destroys the session; unknown session ids are not an error.
	Logout(ctx context.Context, sessionID string) error
	// ResolveSession returns the user behind a live session, or
	// ErrSessionInvalid for a missing or expired one.
	ResolveSession(ctx context.Context, sessionID string) (user.User, error)
}

package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown username, wrong password, and a
	// deactivated account alike; callers cannot tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)

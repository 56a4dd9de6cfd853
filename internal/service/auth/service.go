package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/session"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
)

type AuthServiceImpl struct {
	user.UserRepository
	session.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(userRepository user.UserRepository, sessionRepository session.SessionRepository, sessionTTL time.Duration) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		sessionTTL:        sessionTTL,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (user.User, session.Session, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, session.Session{}, auth.ErrInvalidCredentials
		}
		return user.User{}, session.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !userData.IsActive {
		return user.User{}, session.Session{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.User{}, session.Session{}, auth.ErrInvalidCredentials
	}

	now := time.Now()
	newSession, err := a.SessionRepository.Create(ctx, session.Session{
		ID:        uuid.NewString(),
		UserID:    userData.ID,
		ExpiresAt: now.Add(a.sessionTTL),
		CreatedAt: now,
	})
	if err != nil {
		return user.User{}, session.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	if err := a.UserRepository.TouchLastLogin(ctx, userData.ID); err != nil {
		return user.User{}, session.Session{}, fmt.Errorf("failed to update last login: %w", err)
	}
	lastLogin := now
	userData.LastLogin = &lastLogin

	return userData, newSession, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := a.SessionRepository.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ResolveSession implements auth.AuthService.
func (a *AuthServiceImpl) ResolveSession(ctx context.Context, sessionID string) (user.User, error) {
	if sessionID == "" {
		return user.User{}, auth.ErrSessionInvalid
	}

	sessionData, err := a.SessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return user.User{}, auth.ErrSessionInvalid
		}
		return user.User{}, fmt.Errorf("failed to get session: %w", err)
	}

	if sessionData.Expired(time.Now()) {
		// Expired sessions are reaped lazily on first use.
		if err := a.SessionRepository.Delete(ctx, sessionID); err != nil {
			return user.User{}, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return user.User{}, auth.ErrSessionInvalid
	}

	userData, err := a.UserRepository.GetByID(ctx, sessionData.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrSessionInvalid
		}
		return user.User{}, fmt.Errorf("failed to get session user: %w", err)
	}

	return userData, nil
}

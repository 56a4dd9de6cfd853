package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	cookieName  string
	secure      bool
}

func NewAuthHandler(authService auth.AuthService, cookieName string, secure bool) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		cookieName:  cookieName,
		secure:      secure,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userData, newSession, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	sessionCookie := &http.Cookie{
		Name:     a.cookieName,
		Value:    newSession.ID,
		Path:     "/",
		Expires:  newSession.ExpiresAt,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, sessionCookie)

	userResponse := user.NewUserResponse(userData)
	slog.Info("User logged in successfully", "username", userData.Username)
	response.Success(w, auth.LoginResponse{
		Authenticated: true,
		Message:       "Login successful",
		User:          &userResponse,
	})
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := ""
	if cookie, err := r.Cookie(a.cookieName); err == nil {
		sessionID = cookie.Value
	}

	if err := a.authService.Logout(r.Context(), sessionID); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	clearedCookie := &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, clearedCookie)

	response.Success(w, auth.LogoutResponse{
		Authenticated: false,
		Message:       "Logout successful",
	})
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Success(w, auth.MeResponse{Authenticated: false, User: nil})
		return
	}

	userResponse := user.NewUserResponse(sessionUser)
	response.Success(w, auth.MeResponse{
		Authenticated: true,
		User:          &userResponse,
	})
}

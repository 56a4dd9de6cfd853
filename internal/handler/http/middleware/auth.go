package middleware

import (
	"context"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// UserFromContext returns the session user placed there by SessionRequired
// or CurrentUser.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}

func resolveCookie(r *http.Request, authService auth.AuthService, cookieName string) (user.User, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return user.User{}, auth.ErrSessionInvalid
	}
	return authService.ResolveSession(r.Context(), cookie.Value)
}

// SessionRequired rejects requests without a live session cookie.
func SessionRequired(authService auth.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			sessionUser, err := resolveCookie(r, authService, cookieName)
			if err != nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, sessionUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// CurrentUser annotates the context with the session user when one can be
// resolved, and passes through unchanged otherwise.
func CurrentUser(authService auth.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			sessionUser, err := resolveCookie(r, authService, cookieName)
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, sessionUser))
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

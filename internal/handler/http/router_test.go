package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/facetrack/attendance-backend-go/internal/config"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/facetrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/facetrack/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/facetrack/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/facetrack/attendance-backend-go/internal/service/employee"
	masterService "github.com/facetrack/attendance-backend-go/internal/service/master"
	settingsService "github.com/facetrack/attendance-backend-go/internal/service/settings"
)

const (
	testUsername = "admin"
	testPassword = "admin123"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	store := memory.NewStore()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = memory.NewUserRepository(store).Create(context.Background(), user.User{
		ID:           uuid.NewString(),
		Username:     testUsername,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: "attendance_session", TTL: 24 * time.Hour},
		App: config.AppConfig{
			Env:         "test",
			StoreDriver: "memory",
			CORSOrigin:  "http://localhost:3000",
		},
	}

	userRepo := memory.NewUserRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	roleRepo := memory.NewRoleRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	settingsRepo := memory.NewSettingsRepository(store)

	auth := authService.NewAuthService(userRepo, sessionRepo, cfg.Session.TTL)

	handlers := Handlers{
		Auth:       NewAuthHandler(auth, cfg.Session.CookieName, false),
		Master:     NewMasterHandler(masterService.NewMasterService(departmentRepo, roleRepo)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, departmentRepo, roleRepo)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)),
		Settings:   NewSettingsHandler(settingsService.NewSettingsService(settingsRepo)),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(employeeRepo, attendanceRepo)),
	}

	return NewRouter(cfg, auth, handlers)
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *chi.Mux) *http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "attendance_session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("success sets cookie and strips password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"username": testUsername,
			"password": testPassword,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Authenticated bool                   `json:"authenticated"`
			User          map[string]interface{} `json:"user"`
		}
		decodeData(t, rec, &data)
		assert.True(t, data.Authenticated)
		assert.Equal(t, testUsername, data.User["username"])
		assert.NotContains(t, data.User, "password")
		assert.NotContains(t, data.User, "passwordHash")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"username": testUsername,
			"password": "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("without session", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Authenticated bool `json:"authenticated"`
		}
		decodeData(t, rec, &data)
		assert.False(t, data.Authenticated)
	})

	t.Run("with session", func(t *testing.T) {
		cookie := login(t, router)
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Authenticated bool                   `json:"authenticated"`
			User          map[string]interface{} `json:"user"`
		}
		decodeData(t, rec, &data)
		assert.True(t, data.Authenticated)
		assert.Equal(t, testUsername, data.User["username"])
	})
}

func TestLogoutInvalidatesSession(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/departments", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/departments",
		"/api/roles",
		"/api/employees",
		"/api/attendance",
		"/api/settings",
		"/api/dashboard/stats",
	} {
		rec := doJSON(t, router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestDepartmentEndpoints(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/departments", map[string]string{
		"name": "Engineering",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		EmployeeCount int    `json:"employeeCount"`
	}
	decodeData(t, rec, &created)
	assert.Equal(t, "Engineering", created.Name)
	assert.Equal(t, 0, created.EmployeeCount)

	rec = doJSON(t, router, http.MethodPut, "/api/departments/"+created.ID, map[string]string{
		"manager": "Dana",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/departments/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/departments/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/departments", map[string]string{}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployeeEndpoints(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/departments", map[string]string{
		"name": "Engineering",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	var dept struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &dept)

	rec = doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"employeeId":   "EMP001",
		"name":         "Ari",
		"email":        "ari@example.com",
		"departmentId": dept.ID,
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID         string `json:"id"`
		EmployeeID string `json:"employeeId"`
		Status     string `json:"status"`
	}
	decodeData(t, rec, &created)
	assert.Equal(t, "EMP001", created.EmployeeID)
	assert.Equal(t, "active", created.Status)

	// Duplicate employee code conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"employeeId": "EMP001",
		"name":       "Budi",
		"email":      "budi@example.com",
	}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Listing resolves the department join.
	rec = doJSON(t, router, http.MethodGet, "/api/employees", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []struct {
		ID         string                 `json:"id"`
		Department map[string]interface{} `json:"department"`
		Role       map[string]interface{} `json:"role"`
	}
	decodeData(t, rec, &listed)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Department)
	assert.Equal(t, dept.ID, listed[0].Department["id"])
	assert.Nil(t, listed[0].Role)

	// Department count reflects the create.
	rec = doJSON(t, router, http.MethodGet, "/api/departments", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var departments []struct {
		EmployeeCount int `json:"employeeCount"`
	}
	decodeData(t, rec, &departments)
	require.Len(t, departments, 1)
	assert.Equal(t, 1, departments[0].EmployeeCount)

	rec = doJSON(t, router, http.MethodDelete, "/api/employees/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/employees/"+created.ID, map[string]string{
		"name": "Ghost",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceEndpoints(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	today := time.Now().Format("2006-01-02")

	rec := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"date":    today,
		"checkIn": "08:02",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rec, &created)
	assert.Equal(t, "present", created.Status)

	rec = doJSON(t, router, http.MethodPut, "/api/attendance/"+created.ID, map[string]string{
		"checkOut": "17:00",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/attendance?date="+today, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []struct {
		ID       string  `json:"id"`
		CheckOut *string `json:"checkOut"`
	}
	decodeData(t, rec, &listed)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].CheckOut)
	assert.Equal(t, "17:00", *listed[0].CheckOut)

	rec = doJSON(t, router, http.MethodGet, "/api/attendance?date=1999-01-01", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	listed = nil
	decodeData(t, rec, &listed)
	assert.Empty(t, listed)

	rec = doJSON(t, router, http.MethodPost, "/api/attendance", map[string]string{
		"date": "not-a-date",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/settings", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var current struct {
		WorkStartTime      string `json:"workStartTime"`
		GracePeriodMinutes int    `json:"gracePeriodMinutes"`
	}
	decodeData(t, rec, &current)
	assert.Equal(t, "08:00", current.WorkStartTime)
	assert.Equal(t, 5, current.GracePeriodMinutes)

	rec = doJSON(t, router, http.MethodPut, "/api/settings", map[string]interface{}{
		"workStartTime": "09:00",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &current)
	assert.Equal(t, "09:00", current.WorkStartTime)
	assert.Equal(t, 5, current.GracePeriodMinutes)

	rec = doJSON(t, router, http.MethodPut, "/api/settings", map[string]interface{}{
		"recognitionThreshold": "2.0",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router)

	today := time.Now().Format("2006-01-02")

	for _, body := range []map[string]interface{}{
		{"employeeId": "EMP001", "name": "Ari", "email": "ari@example.com"},
		{"employeeId": "EMP002", "name": "Budi", "email": "budi@example.com"},
		{"employeeId": "EMP003", "name": "Citra", "email": "citra@example.com"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/employees", body, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	for _, body := range []map[string]interface{}{
		{"date": today, "status": "present"},
		{"date": today, "status": "late"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/attendance", body, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalEmployees int `json:"totalEmployees"`
		OnTime         int `json:"onTime"`
		Absent         int `json:"absent"`
		LateArrival    int `json:"lateArrival"`
	}
	decodeData(t, rec, &stats)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 1, stats.OnTime)
	assert.Equal(t, 1, stats.LateArrival)
	assert.Equal(t, 1, stats.Absent)
}

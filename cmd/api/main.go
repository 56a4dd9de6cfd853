package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/config"
	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/domain/session"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/facetrack/attendance-backend-go/internal/handler/http"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/repository/memory"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facetrack/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/facetrack/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/facetrack/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/facetrack/attendance-backend-go/internal/service/employee"
	"github.com/facetrack/attendance-backend-go/internal/service/master"
	settingsService "github.com/facetrack/attendance-backend-go/internal/service/settings"
)

type repositories struct {
	user       user.UserRepository
	session    session.SessionRepository
	department department.DepartmentRepository
	role       role.RoleRepository
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	settings   settings.SettingsRepository
}

func buildRepositories(cfg *config.Config) (repositories, error) {
	switch cfg.App.StoreDriver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			return repositories{}, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories{
			user:       postgresql.NewUserRepository(db),
			session:    postgresql.NewSessionRepository(db),
			department: postgresql.NewDepartmentRepository(db),
			role:       postgresql.NewRoleRepository(db),
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			settings:   postgresql.NewSettingsRepository(db),
		}, nil
	case "memory":
		store := memory.NewStore()
		return repositories{
			user:       memory.NewUserRepository(store),
			session:    memory.NewSessionRepository(store),
			department: memory.NewDepartmentRepository(store),
			role:       memory.NewRoleRepository(store),
			employee:   memory.NewEmployeeRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			settings:   memory.NewSettingsRepository(store),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.App.StoreDriver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		fmt.Println("Error building store:", err)
		return
	}

	authService := serviceAuth.NewAuthService(repos.user, repos.session, cfg.Session.TTL)
	masterService := master.NewMasterService(repos.department, repos.role)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, repos.department, repos.role)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee)
	settingsSvc := settingsService.NewSettingsService(repos.settings)
	dashboardSvc := dashboardService.NewDashboardService(repos.employee, repos.attendance)

	secureCookies := cfg.App.Env == "production"
	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService, cfg.Session.CookieName, secureCookies),
		Master:     appHTTP.NewMasterHandler(masterService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, authService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

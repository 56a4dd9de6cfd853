// Seeds the database with the admin account, default system settings and a
// small demo organization. Safe to run more than once.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/facetrack/attendance-backend-go/internal/config"
	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
)

func strPtr(s string) *string { return &s }

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}
	if err := seedSettings(ctx, db); err != nil {
		log.Fatalf("seed settings error: %v", err)
	}
	if err := seedDemoOrg(ctx, db); err != nil {
		log.Fatalf("seed demo org error: %v", err)
	}

	fmt.Println("Seed completed")
}

func seedAdminUser(ctx context.Context, db *database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt error: %w", err)
	}

	_, err = postgresql.NewUserRepository(db).Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Email:        strPtr("admin@facetrack.local"),
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	if errors.Is(err, user.ErrUsernameExists) {
		fmt.Println("admin user already exists, skipping")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("admin user created (username 'admin', password 'admin123')")
	return nil
}

func seedSettings(ctx context.Context, db *database.DB) error {
	// An empty update creates the singleton with defaults when absent.
	_, err := postgresql.NewSettingsRepository(db).Update(ctx, settings.UpdateSettingsRequest{})
	return err
}

func seedDemoOrg(ctx context.Context, db *database.DB) error {
	departmentRepo := postgresql.NewDepartmentRepository(db)

	existing, err := departmentRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("departments already present, skipping demo data")
		return nil
	}

	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	departments := map[string]string{}
	for _, item := range []struct {
		name        string
		description string
	}{
		{"Engineering", "Product and platform engineering"},
		{"Human Resources", "People operations"},
		{"Finance", "Accounting and payroll"},
	} {
		created, err := departmentRepo.Create(ctx, department.Department{
			ID:          uuid.NewString(),
			Name:        item.name,
			Description: strPtr(item.description),
		})
		if err != nil {
			return err
		}
		departments[item.name] = created.ID
	}

	roles := map[string]string{}
	for _, item := range []struct {
		name       string
		department string
	}{
		{"Backend Engineer", "Engineering"},
		{"Frontend Engineer", "Engineering"},
		{"QA Engineer", "Engineering"},
		{"HR Generalist", "Human Resources"},
		{"Recruiter", "Human Resources"},
		{"Accountant", "Finance"},
	} {
		departmentID := departments[item.department]
		created, err := roleRepo.Create(ctx, role.Role{
			ID:           uuid.NewString(),
			Name:         item.name,
			DepartmentID: &departmentID,
		})
		if err != nil {
			return err
		}
		roles[item.name] = created.ID
	}

	employees := []string{}
	for _, item := range []struct {
		code       string
		name       string
		email      string
		department string
		role       string
	}{
		{"EMP001", "Ari Wibowo", "ari.wibowo@facetrack.local", "Engineering", "Backend Engineer"},
		{"EMP002", "Citra Lestari", "citra.lestari@facetrack.local", "Human Resources", "HR Generalist"},
	} {
		departmentID := departments[item.department]
		roleID := roles[item.role]
		created, err := employeeRepo.Create(ctx, employee.Employee{
			ID:           uuid.NewString(),
			EmployeeCode: item.code,
			Name:         item.name,
			Email:        item.email,
			DepartmentID: &departmentID,
			RoleID:       &roleID,
			Status:       employee.StatusActive,
			FaceImages:   []string{},
		})
		if err != nil {
			return err
		}
		employees = append(employees, created.ID)
	}

	for _, record := range []attendance.Attendance{
		{
			EmployeeID: &employees[0],
			Date:       "2025-03-10",
			CheckIn:    strPtr("08:02"),
			CheckOut:   strPtr("17:05"),
			Status:     attendance.StatusPresent,
		},
		{
			EmployeeID: &employees[1],
			Date:       "2025-03-10",
			CheckIn:    strPtr("08:40"),
			CheckOut:   strPtr("17:00"),
			Status:     attendance.StatusLate,
			Notes:      strPtr("train delay"),
		},
		{
			EmployeeID: &employees[0],
			Date:       "2025-03-11",
			CheckIn:    strPtr("08:00"),
			CheckOut:   strPtr("15:30"),
			Status:     attendance.StatusPresent,
			Notes:      strPtr("early departure approved"),
		},
	} {
		record.ID = uuid.NewString()
		if _, err := attendanceRepo.Create(ctx, record); err != nil {
			return err
		}
	}

	fmt.Println("demo organization seeded")
	return nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
)

// Migrate creates the schema if it does not exist. References use ON
// DELETE SET NULL so deleting a department or role never blocks and the
// dependents' references resolve to null afterwards.
func Migrate(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(255) PRIMARY KEY,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			email TEXT,
			role TEXT NOT NULL DEFAULT 'user',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_login TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT users_username_key UNIQUE (username),
			CONSTRAINT users_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			id VARCHAR(255) PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			manager TEXT,
			employee_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id VARCHAR(255) PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			department_id VARCHAR(255) REFERENCES departments(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id VARCHAR(255) PRIMARY KEY,
			employee_code TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			department_id VARCHAR(255) REFERENCES departments(id) ON DELETE SET NULL,
			role_id VARCHAR(255) REFERENCES roles(id) ON DELETE SET NULL,
			status TEXT NOT NULL DEFAULT 'active',
			face_images TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT employees_employee_code_key UNIQUE (employee_code),
			CONSTRAINT employees_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id VARCHAR(255) PRIMARY KEY,
			employee_id VARCHAR(255) REFERENCES employees(id) ON DELETE SET NULL,
			date TEXT NOT NULL,
			check_in TEXT,
			check_out TEXT,
			working_hours TEXT,
			status TEXT NOT NULL DEFAULT 'present',
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS attendance_records_date_idx ON attendance_records (date)`,
		`CREATE INDEX IF NOT EXISTS attendance_records_employee_id_idx ON attendance_records (employee_id)`,
		`CREATE TABLE IF NOT EXISTS system_settings (
			id VARCHAR(255) PRIMARY KEY,
			work_start_time TEXT NOT NULL DEFAULT '08:00',
			work_end_time TEXT NOT NULL DEFAULT '17:00',
			lunch_start_time TEXT NOT NULL DEFAULT '12:00',
			lunch_end_time TEXT NOT NULL DEFAULT '13:00',
			grace_period_minutes INTEGER NOT NULL DEFAULT 5,
			max_late_period_minutes INTEGER NOT NULL DEFAULT 60,
			recognition_threshold TEXT NOT NULL DEFAULT '0.85',
			min_training_images INTEGER NOT NULL DEFAULT 2,
			email_notifications BOOLEAN NOT NULL DEFAULT TRUE,
			daily_reports BOOLEAN NOT NULL DEFAULT TRUE,
			weekly_reports BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id VARCHAR(255) PRIMARY KEY,
			user_id VARCHAR(255) REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}

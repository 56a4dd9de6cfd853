package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// setupTestDB connects to the database named by TEST_DATABASE_URL, runs the
// migrations once, and truncates every table so each test starts clean.
// Tests are skipped when no test database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	if testDB == nil {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			t.Fatalf("failed to migrate test database: %v", err)
		}
		testDB = db
	}

	truncateAllTables(t)
	return testDB
}

func truncateAllTables(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"sessions",
		"attendance_records",
		"employees",
		"roles",
		"departments",
		"users",
		"system_settings",
	}

	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

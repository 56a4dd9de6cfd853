package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/repository/memory"
)

func strPtr(s string) *string { return &s }

func makeRoster(n int) []employee.Employee {
	roster := make([]employee.Employee, n)
	for i := range roster {
		roster[i] = employee.Employee{ID: uuid.NewString()}
	}
	return roster
}

func TestComputeStats(t *testing.T) {
	roster := makeRoster(10)

	records := []attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent, Notes: strPtr("arrived late after appointment")},
		{Status: attendance.StatusPresent, Notes: strPtr("early departure approved")},
		{Status: attendance.StatusLate},
		{Status: attendance.StatusLate, Notes: strPtr("train delay")},
		{Status: attendance.StatusTimeOff},
	}

	stats := ComputeStats(roster, records)

	assert.Equal(t, dashboard.StatsResponse{
		TotalEmployees: 10,
		OnTime:         2, // three present, one flagged late in notes
		Absent:         5, // 10 - 3 present - 2 late
		LateArrival:    2,
		EarlyDeparture: 1,
		TimeOff:        1,
	}, stats)
}

func TestComputeStatsSparseDay(t *testing.T) {
	// Ten employees, three records: two clean presents and one late.
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent, Notes: strPtr("on site all day")},
		{Status: attendance.StatusLate},
	}

	stats := ComputeStats(makeRoster(10), records)

	assert.Equal(t, dashboard.StatsResponse{
		TotalEmployees: 10,
		OnTime:         2,
		Absent:         7,
		LateArrival:    1,
		EarlyDeparture: 0,
		TimeOff:        0,
	}, stats)
}

func TestComputeStatsNoRecords(t *testing.T) {
	stats := ComputeStats(makeRoster(4), nil)

	assert.Equal(t, dashboard.StatsResponse{
		TotalEmployees: 4,
		Absent:         4,
	}, stats)
}

func TestComputeStatsAbsentClampedAtZero(t *testing.T) {
	// More records than employees can happen with duplicate records per
	// day; the subtraction must not go negative.
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusLate},
	}

	stats := ComputeStats(makeRoster(2), records)
	assert.Equal(t, 0, stats.Absent)
}

func TestComputeStatsEarlyIndependentOfStatus(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusAbsent, Notes: strPtr("early leave yesterday")},
		{Status: attendance.StatusLate, Notes: strPtr("left early")},
	}

	stats := ComputeStats(makeRoster(5), records)
	assert.Equal(t, 2, stats.EarlyDeparture)
}

func TestGetStatsOnlyCountsToday(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)

	var ids []string
	for i := 0; i < 3; i++ {
		created, err := employeeRepo.Create(ctx, employee.Employee{
			ID:           uuid.NewString(),
			EmployeeCode: uuid.NewString(),
			Name:         "Employee",
			Email:        uuid.NewString() + "@example.com",
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	today := "2025-03-10"
	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, record := range []attendance.Attendance{
		{ID: uuid.NewString(), EmployeeID: &ids[0], Date: today, Status: attendance.StatusPresent},
		{ID: uuid.NewString(), EmployeeID: &ids[1], Date: today, Status: attendance.StatusLate},
		{ID: uuid.NewString(), EmployeeID: &ids[2], Date: "2025-03-09", Status: attendance.StatusPresent},
	} {
		_, err := attendanceRepo.Create(ctx, record)
		require.NoError(t, err)
	}

	service := &dashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            func() time.Time { return fixed },
	}

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, dashboard.StatsResponse{
		TotalEmployees: 3,
		OnTime:         1,
		Absent:         1,
		LateArrival:    1,
	}, stats)
}

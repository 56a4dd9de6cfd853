package dashboard

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
)

type dashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	// now is replaceable in tests; nil means time.Now.
	now func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &dashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	today := nowFn().Format("2006-01-02")

	var (
		roster  []employee.Employee
		records []attendance.Attendance
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gCtx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	return ComputeStats(roster, records), nil
}

// ComputeStats derives the day's counters from the roster and that day's
// records. On-time excludes present records whose notes mention "late";
// early departures are counted off notes alone, whatever the status says.
func ComputeStats(roster []employee.Employee, records []attendance.Attendance) dashboard.StatsResponse {
	stats := dashboard.StatsResponse{
		TotalEmployees: len(roster),
	}

	var present int
	for _, record := range records {
		notes := ""
		if record.Notes != nil {
			notes = *record.Notes
		}

		switch record.Status {
		case attendance.StatusPresent:
			present++
			if !strings.Contains(notes, "late") {
				stats.OnTime++
			}
		case attendance.StatusLate:
			stats.LateArrival++
		case attendance.StatusTimeOff:
			stats.TimeOff++
		}

		if strings.Contains(notes, "early") {
			stats.EarlyDeparture++
		}
	}

	stats.Absent = stats.TotalEmployees - present - stats.LateArrival
	if stats.Absent < 0 {
		stats.Absent = 0
	}

	return stats
}

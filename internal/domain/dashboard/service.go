package dashboard

import "context"

type DashboardService interface {
	// GetStats computes today's counters from the roster and today's
	// attendance records.
	GetStats(ctx context.Context) (StatsResponse, error)
}

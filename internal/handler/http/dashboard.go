package http

import (
	"log/slog"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

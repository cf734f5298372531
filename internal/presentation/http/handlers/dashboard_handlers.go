package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/services"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
)

// DashboardHandlers contains dashboard and activity-log HTTP handlers.
type DashboardHandlers struct {
	dashboardService *services.DashboardService
	activityService  *services.ActivityService
	logger           *logging.ChanneledLogger
}

// NewDashboardHandlers creates dashboard handlers with injected dependencies.
func NewDashboardHandlers(dashboardService *services.DashboardService, activityService *services.ActivityService, logger *logging.ChanneledLogger) *DashboardHandlers {
	return &DashboardHandlers{
		dashboardService: dashboardService,
		activityService:  activityService,
		logger:           logger,
	}
}

// GetStats returns the admin dashboard counters.
func (h *DashboardHandlers) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetActivityLog returns the most recent audit entries.
func (h *DashboardHandlers) GetActivityLog(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	entries, err := h.activityService.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries, "count": len(entries)})
}

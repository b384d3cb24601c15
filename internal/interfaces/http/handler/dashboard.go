package handler

import (
	"context"

	"github.com/aims/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// StatsService computes the dashboard statistics
type StatsService interface {
	Stats(ctx context.Context) (*dashboard.StatsResponse, error)
}

// DashboardHandler serves the dashboard endpoint
type DashboardHandler struct {
	BaseHandler
	stats StatsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(stats StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats godoc
// @ID           getDashboardStats
// @Summary      Inventory statistics
// @Description  Entity totals and asset breakdowns by status, category, location and assigned user.
// @Description  Assets without the related record are grouped under a null id and name.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[dashboard.StatsResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

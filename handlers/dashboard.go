package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselhub/services/dashboard"
	"counselhub/utils"
)

// DashboardHandler serves the console landing-page aggregates.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.GetStats(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/schedule"
	"counselhub/utils"
)

// ScheduleHandler exposes the availability template and per-date schedule
// endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// UpdateAvailabilityHandler replaces a counselor's weekly template for one
// day and extends the materialized window.
func (h *ScheduleHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselorID := c.Param("id")

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	report, err := h.Service.UpdateAvailability(c.Request.Context(), counselorID, req.Day, req.Slots)
	if err != nil {
		logger.Error("Failed to update availability",
			zap.String("counselorID", counselorID),
			zap.String("day", req.Day),
			zap.Error(err))
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "report": report})
}

func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	counselorID := c.Param("id")

	availability, err := h.Service.GetAvailability(c.Request.Context(), counselorID)
	if err != nil {
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": availability})
}

// MaterializeHandler expands a counselor's template into per-date documents
// for the rolling window. Existing dates are left untouched.
func (h *ScheduleHandler) MaterializeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselorID := c.Param("id")

	// weeks defaults to the configured window when omitted.
	weeks := 0
	if q := c.Query("weeks"); q != "" {
		w, err := strconv.Atoi(q)
		if err != nil || w < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weeks must be a positive integer"})
			return
		}
		weeks = w
	}

	report, err := h.Service.MaterializeWindow(c.Request.Context(), counselorID, weeks)
	if err != nil {
		logger.Error("Materialization failed",
			zap.String("counselorID", counselorID),
			zap.Error(err))
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error(), "report": report})
		return
	}

	status := http.StatusOK
	if len(report.Errors) > 0 {
		// Partial success: some dates failed but the rest were written.
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"report": report})
}

// RefreshDayHandler re-derives one materialized date from the current
// template, preserving booked slots. Operator escape hatch.
func (h *ScheduleHandler) RefreshDayHandler(c *gin.Context) {
	counselorID := c.Param("id")
	date := c.Param("date")

	day, err := h.Service.RefreshDay(c.Request.Context(), counselorID, date)
	if err != nil {
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day})
}

func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	counselorID := c.Param("id")
	date := c.Param("date")

	day, err := h.Service.GetDay(c.Request.Context(), counselorID, date)
	if err != nil {
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day})
}

func (h *ScheduleHandler) ListDaysHandler(c *gin.Context) {
	counselorID := c.Param("id")

	weeks := 0
	if q := c.Query("weeks"); q != "" {
		w, err := strconv.Atoi(q)
		if err != nil || w < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weeks must be a positive integer"})
			return
		}
		weeks = w
	}

	days, err := h.Service.ListDays(c.Request.Context(), counselorID, weeks)
	if err != nil {
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

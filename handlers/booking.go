package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/schedule"
	"counselhub/utils"
)

// BookingHandler exposes slot booking and cancellation endpoints.
type BookingHandler struct {
	Service schedule.ScheduleService
}

func NewBookingHandler(svc schedule.ScheduleService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookSlotHandler books one open slot for a user. The slot flip and the
// counselor ledger entry are written atomically.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselorID := c.Param("id")

	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	meetLink, err := h.Service.BookSlot(c.Request.Context(), counselorID, req)
	if err != nil {
		logger.Warn("Booking failed",
			zap.String("counselorID", counselorID),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err))
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot booked", "meetLink": meetLink})
}

// CancelBookingHandler removes a booking and reopens the slot.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselorID := c.Param("id")

	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.CancelBooking(c.Request.Context(), counselorID, req); err != nil {
		logger.Warn("Cancellation failed",
			zap.String("counselorID", counselorID),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err))
		c.JSON(statusForScheduleError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

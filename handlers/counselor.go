package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselhub/models"
	"counselhub/services/counselor"
	"counselhub/utils"
)

// CounselorHandler exposes counselor profile management endpoints.
type CounselorHandler struct {
	Service counselor.CounselorService
}

func NewCounselorHandler(svc counselor.CounselorService) *CounselorHandler {
	return &CounselorHandler{Service: svc}
}

func (h *CounselorHandler) CreateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Counselor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Failed to create counselor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create counselor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"counselor": created})
}

func (h *CounselorHandler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")
	counselor, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Counselor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselor": counselor})
}

func (h *CounselorHandler) GetByEmailHandler(c *gin.Context) {
	email := c.Param("email")
	counselor, err := h.Service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Counselor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselor": counselor})
}

func (h *CounselorHandler) UpdateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Counselor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Failed to update counselor", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update counselor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselor": updated})
}

func (h *CounselorHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete counselor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Counselor deleted"})
}

func (h *CounselorHandler) ListHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	counselors, err := h.Service.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list counselors", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselors": counselors})
}

func (h *CounselorHandler) SearchHandler(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.DefaultQuery("minRating", "0"), 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	criteria := models.CounselorSearchCriteria{
		Query:     c.Query("q"),
		MinRating: minRating,
		Limit:     limit,
	}

	counselors, err := h.Service.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselors": counselors})
}

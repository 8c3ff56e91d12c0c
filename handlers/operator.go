package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselhub/services/operator"
	"counselhub/utils"
)

// OperatorHandler exposes console account registration and login.
type OperatorHandler struct {
	Service operator.OperatorService
}

func NewOperatorHandler(svc operator.OperatorService) *OperatorHandler {
	return &OperatorHandler{Service: svc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates a console account. Guarded by the admin token.
func (h *OperatorHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	op, err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		logger.Warn("Operator registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"operator": op})
}

func (h *OperatorHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated operator's own account.
func (h *OperatorHandler) MeHandler(c *gin.Context) {
	operatorID := c.GetString("operatorID")
	if operatorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	op, err := h.Service.GetByID(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"operator": op})
}

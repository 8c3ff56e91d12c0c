package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"counselhub/services/counselor"
	"counselhub/services/storage"
	"counselhub/utils"
)

const profileImageFolder = "counselhub/profiles"

// StorageHandler uploads counselor profile images to Cloudinary.
type StorageHandler struct {
	Storage    storage.StorageService
	Counselors counselor.CounselorService
}

func NewStorageHandler(storageSvc storage.StorageService, counselorSvc counselor.CounselorService) *StorageHandler {
	return &StorageHandler{Storage: storageSvc, Counselors: counselorSvc}
}

// UploadProfileImageHandler stores the uploaded image and saves its URL on
// the counselor profile.
func (h *StorageHandler) UploadProfileImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselorID := c.Param("id")

	if _, err := h.Counselors.GetByID(c.Request.Context(), counselorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Counselor not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to buffer upload", "message": err.Error()})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, profileImageFolder)
	if err != nil {
		logger.Error("Profile image upload failed", zap.String("counselorID", counselorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "message": err.Error()})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve image URL", "message": err.Error()})
		return
	}

	if err := h.Counselors.SetPhotoURL(c.Request.Context(), counselorID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo URL", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jogossc/boletins-backend/internal/services"
)

// UploadHandler handles slip ingestion HTTP requests
type UploadHandler struct {
	uploadService services.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Process handles POST /uploads/process
func (h *UploadHandler) Process(c *gin.Context) {
	report, err := h.uploadService.Process(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process uploads: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
	"github.com/jogossc/boletins-backend/internal/services"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
	notifRepo           repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationService, notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		notifRepo:           notifRepo,
	}
}

// GetActive handles GET /notifications
func (h *NotificationHandler) GetActive(c *gin.Context) {
	active, err := h.notifRepo.LoadActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications: " + err.Error()})
		return
	}
	if active == nil {
		active = []*models.Notification{}
	}
	c.JSON(http.StatusOK, active)
}

// Generate handles POST /notifications/generate
func (h *NotificationHandler) Generate(c *gin.Context) {
	added, err := h.notificationService.Generate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate notifications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

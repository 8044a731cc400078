package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jogossc/boletins-backend/internal/repositories"
	"github.com/jogossc/boletins-backend/internal/services"
)

// StatisticsHandler handles statistics-related HTTP requests
type StatisticsHandler struct {
	statisticsService services.StatisticsService
	statsRepo         repositories.StatisticsRepository
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService services.StatisticsService, statsRepo repositories.StatisticsRepository) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
		statsRepo:         statsRepo,
	}
}

// Get handles GET /statistics
func (h *StatisticsHandler) Get(c *gin.Context) {
	stats, err := h.statsRepo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics: " + err.Error()})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Statistics not generated yet"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Generate handles POST /statistics/generate
func (h *StatisticsHandler) Generate(c *gin.Context) {
	stats, err := h.statisticsService.Generate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statistics: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

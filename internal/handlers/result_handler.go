package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
	"github.com/jogossc/boletins-backend/internal/services"
)

// ResultHandler handles verification and result-related HTTP requests
type ResultHandler struct {
	verificationService services.VerificationService
	resultRepo          repositories.ResultRepository
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(verificationService services.VerificationService, resultRepo repositories.ResultRepository) *ResultHandler {
	return &ResultHandler{
		verificationService: verificationService,
		resultRepo:          resultRepo,
	}
}

// GetHistory handles GET /games/:game/results
func (h *ResultHandler) GetHistory(c *gin.Context) {
	gameID := c.Param("game")
	if _, ok := games.Get(gameID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown game"})
		return
	}
	history, err := h.resultRepo.LoadHistory(gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results: " + err.Error()})
		return
	}
	if history == nil {
		history = []*models.VerificationResult{}
	}
	c.JSON(http.StatusOK, history)
}

// GetRecent handles GET /results/recent
func (h *ResultHandler) GetRecent(c *gin.Context) {
	recent, err := h.resultRepo.LoadAllRecent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent results: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, recent)
}

// Verify handles POST /games/:game/verify
func (h *ResultHandler) Verify(c *gin.Context) {
	gameID := c.Param("game")
	if gameID == "all" {
		summaries, err := h.verificationService.RunAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, summaries)
		return
	}
	summary, err := h.verificationService.Run(c.Request.Context(), gameID)
	if err != nil {
		if _, ok := games.Get(gameID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown game"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// LookupCode handles GET /games/:game/codes/:code. Only the code game has
// winning codes to look up.
func (h *ResultHandler) LookupCode(c *gin.Context) {
	if c.Param("game") != games.M1lhao {
		c.JSON(http.StatusNotFound, gin.H{"error": "Codes exist only for milhao"})
		return
	}
	draw, year, err := h.verificationService.LookupCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Code lookup failed: " + err.Error()})
		return
	}
	if draw == nil {
		c.JSON(http.StatusOK, gin.H{"won": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"won": true, "year": year, "draw": draw})
}

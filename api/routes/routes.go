package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/handlers"
	"github.com/jogossc/boletins-backend/internal/middleware"
	"github.com/jogossc/boletins-backend/pkg/jwt"
)

// HandlerDependencies groups every handler the router mounts.
type HandlerDependencies struct {
	Result       *handlers.ResultHandler
	Notification *handlers.NotificationHandler
	Statistics   *handlers.StatisticsHandler
	Upload       *handlers.UploadHandler
	Auth         *handlers.AuthHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, tokens *jwt.Manager, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", deps.Auth.Login)

		public.GET("/games/:game/results", deps.Result.GetHistory)
		public.GET("/results/recent", deps.Result.GetRecent)
		public.GET("/games/:game/codes/:code", deps.Result.LookupCode)
		public.GET("/statistics", deps.Statistics.Get)
		public.GET("/notifications", deps.Notification.GetActive)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	{
		protected.POST("/games/:game/verify", deps.Result.Verify)
		protected.POST("/uploads/process", deps.Upload.Process)
		protected.POST("/notifications/generate", deps.Notification.Generate)
		protected.POST("/statistics/generate", deps.Statistics.Generate)
	}

	return router
}

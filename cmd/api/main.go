package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/api/routes"
	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/handlers"
	"github.com/jogossc/boletins-backend/internal/repositories/jsonfile"
	"github.com/jogossc/boletins-backend/internal/services"
	"github.com/jogossc/boletins-backend/pkg/jwt"
	"github.com/jogossc/boletins-backend/pkg/ocr"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	// Repositories over the shared JSON data directories
	store := jsonfile.NewStore(cfg.Data.BetsDir, cfg.Data.DrawsDir, cfg.Data.ResultsDir)
	betRepo := jsonfile.NewBetRepository(store)
	archiveRepo := jsonfile.NewDrawArchiveRepository(store)
	resultRepo := jsonfile.NewResultRepository(store)
	notifRepo := jsonfile.NewNotificationRepository(store)
	statsRepo := jsonfile.NewStatisticsRepository(store)
	registryRepo := jsonfile.NewRegistryRepository(store)

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	extractor := ocr.NewClient(cfg.OCR.BaseURL, cfg.OCR.APIKey, cfg.OCR.Model, cfg.OCR.MockAPI)

	// Services
	verificationService := services.NewVerificationService(betRepo, archiveRepo, resultRepo)
	notificationService := services.NewNotificationService(resultRepo, notifRepo)
	statisticsService := services.NewStatisticsService(cfg, betRepo, archiveRepo, statsRepo)
	uploadService := services.NewUploadService(cfg, extractor, betRepo, registryRepo)
	authService := services.NewAuthService(cfg, tokens)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		Result:       handlers.NewResultHandler(verificationService, resultRepo),
		Notification: handlers.NewNotificationHandler(notificationService, notifRepo),
		Statistics:   handlers.NewStatisticsHandler(statisticsService, statsRepo),
		Upload:       handlers.NewUploadHandler(uploadService),
		Auth:         handlers.NewAuthHandler(authService),
	}

	router := routes.SetupRouter(cfg, tokens, handlerDeps)

	// Scheduled nightly run: ingest new uploads, verify, notify, rebuild
	// statistics. Draw results publish in the evening.
	var scheduler *cron.Cron
	if cfg.Schedule.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Schedule.Cron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			runPipeline(ctx, uploadService, verificationService, notificationService, statisticsService)
		})
		if err != nil {
			slog.Error("invalid schedule expression", "cron", cfg.Schedule.Cron, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		slog.Info("scheduler started", "cron", cfg.Schedule.Cron)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("server starting", "port", cfg.Server.Port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}

// runPipeline executes the full nightly sequence. Each stage is independent;
// a failing stage logs and the next still runs.
func runPipeline(
	ctx context.Context,
	uploads services.UploadService,
	verification services.VerificationService,
	notifications services.NotificationService,
	statistics services.StatisticsService,
) {
	if _, err := uploads.Process(ctx); err != nil {
		slog.Error("scheduled upload processing failed", "error", err)
	}
	if _, err := verification.RunAll(ctx); err != nil {
		slog.Error("scheduled verification failed", "error", err)
	}
	if _, err := notifications.Generate(ctx); err != nil {
		slog.Error("scheduled notification generation failed", "error", err)
	}
	if _, err := statistics.Generate(ctx); err != nil {
		slog.Error("scheduled statistics rebuild failed", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

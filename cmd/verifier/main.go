package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories/jsonfile"
	"github.com/jogossc/boletins-backend/internal/services"
	"github.com/jogossc/boletins-backend/pkg/ocr"
)

// The verifier is the batch entrypoint: one shot over the data directories,
// results on stdout, no server. It is what the nightly cron inside the API
// runs, made invocable by hand.
func main() {
	gameFlag := flag.String("game", "all", "game to verify (euromilhoes, totoloto, eurodreams, milhao or all)")
	uploadsFlag := flag.Bool("uploads", false, "process new slip images from the uploads folder first")
	notifyFlag := flag.Bool("notify", false, "generate notifications from the recent results")
	statsFlag := flag.Bool("stats", false, "rebuild the statistics file")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store := jsonfile.NewStore(cfg.Data.BetsDir, cfg.Data.DrawsDir, cfg.Data.ResultsDir)
	betRepo := jsonfile.NewBetRepository(store)
	archiveRepo := jsonfile.NewDrawArchiveRepository(store)
	resultRepo := jsonfile.NewResultRepository(store)

	ctx := context.Background()

	if *uploadsFlag {
		extractor := ocr.NewClient(cfg.OCR.BaseURL, cfg.OCR.APIKey, cfg.OCR.Model, cfg.OCR.MockAPI)
		uploadService := services.NewUploadService(cfg, extractor, betRepo, jsonfile.NewRegistryRepository(store))
		report, err := uploadService.Process(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "upload processing failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Uploads: %d novas imagens, %d ignoradas, %d falhadas\n",
			report.Images, report.Skipped, report.Failed)
		fmt.Printf("Boletins: %d registados, %d duplicados, %d rejeitados\n",
			report.BetsAdded, report.Duplicates, report.Rejected)
	}

	verificationService := services.NewVerificationService(betRepo, archiveRepo, resultRepo)
	var summaries []*models.RunSummary
	if *gameFlag == "all" {
		summaries, err = verificationService.RunAll(ctx)
	} else {
		var summary *models.RunSummary
		summary, err = verificationService.Run(ctx, *gameFlag)
		if summary != nil {
			summaries = append(summaries, summary)
		}
	}
	for _, s := range summaries {
		printSummary(s)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "verification failed:", err)
		os.Exit(1)
	}

	if *notifyFlag {
		notificationService := services.NewNotificationService(resultRepo, jsonfile.NewNotificationRepository(store))
		added, err := notificationService.Generate(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "notification generation failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Notificações: %d novas\n", added)
	}

	if *statsFlag {
		statisticsService := services.NewStatisticsService(cfg, betRepo, archiveRepo, jsonfile.NewStatisticsRepository(store))
		if _, err := statisticsService.Generate(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "statistics rebuild failed:", err)
			os.Exit(1)
		}
		fmt.Println("Estatísticas: atualizadas")
	}
}

func printSummary(s *models.RunSummary) {
	fmt.Printf("%s: %d apostas verificadas, %d premiadas, %d novas no histórico (%d no total)\n",
		games.DisplayName(s.Game), s.Verified, s.Won, s.Added, s.HistoryTotal)

	names := make([]string, 0, len(s.TierCounts))
	for name := range s.TierCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %d\n", name, s.TierCounts[name])
	}
}

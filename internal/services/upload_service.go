package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
	"github.com/jogossc/boletins-backend/pkg/ocr"
)

// Compile-time check to ensure UploadServiceImpl implements UploadService
var _ UploadService = (*UploadServiceImpl)(nil)

// SlipExtractor extracts structured bets from a slip photograph.
type SlipExtractor interface {
	ExtractSlip(ctx context.Context, imagePath string) (*ocr.Extraction, error)
}

// UploadServiceImpl ingests slip photographs dropped in the uploads folder:
// hash the image, skip anything already in the processing registry, run the
// extractor, validate and store the extracted bets.
type UploadServiceImpl struct {
	cfg          *config.Config
	extractor    SlipExtractor
	betRepo      repositories.BetRepository
	registryRepo repositories.RegistryRepository
}

// NewUploadService creates a new UploadServiceImpl
func NewUploadService(
	cfg *config.Config,
	extractor SlipExtractor,
	betRepo repositories.BetRepository,
	registryRepo repositories.RegistryRepository,
) *UploadServiceImpl {
	return &UploadServiceImpl{
		cfg:          cfg,
		extractor:    extractor,
		betRepo:      betRepo,
		registryRepo: registryRepo,
	}
}

// Process scans the uploads folder once. Image content hashes make the scan
// idempotent: renaming or re-uploading the same photo never re-ingests it.
// A failed extraction is not registered, so the image is retried next pass.
func (s *UploadServiceImpl) Process(ctx context.Context) (*UploadReport, error) {
	report := &UploadReport{}
	entries, err := os.ReadDir(s.cfg.Data.UploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("uploads folder absent, nothing to process", "dir", s.cfg.Data.UploadsDir)
			return report, nil
		}
		return nil, err
	}

	registry, err := s.registryRepo.Load()
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(verifiedAtLayout)
	changed := false
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		path := filepath.Join(s.cfg.Data.UploadsDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("upload unreadable", "file", entry.Name(), "error", err)
			report.Failed++
			continue
		}
		sum := md5.Sum(data)
		hash := hex.EncodeToString(sum[:])
		if _, done := registry[hash]; done {
			report.Skipped++
			continue
		}

		extraction, err := s.extractor.ExtractSlip(ctx, path)
		if err != nil {
			slog.Error("slip extraction failed", "file", entry.Name(), "error", err)
			report.Failed++
			continue
		}
		report.Images++

		for _, bet := range extraction.Games {
			bet := bet
			s.ingest(&bet, entry.Name(), hash, now, report)
		}

		registry[hash] = models.ProcessedImage{File: entry.Name(), Date: now}
		changed = true
	}

	if changed {
		if err := s.registryRepo.Save(registry); err != nil {
			return nil, err
		}
	}
	slog.Info("uploads processed",
		"images", report.Images,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"added", report.BetsAdded,
		"duplicates", report.Duplicates,
		"rejected", report.Rejected)
	return report, nil
}

// ingest validates and stores one extracted bet. Malformed wagers are
// dropped individually; the bet is rejected only when nothing valid remains.
func (s *UploadServiceImpl) ingest(bet *models.Bet, image, hash, now string, report *UploadReport) {
	gameID, ok := normalizeGameID(bet.GameType)
	if !ok {
		slog.Warn("extracted game not recognized", "game", bet.GameType, "file", image)
		report.Rejected++
		return
	}
	rules, _ := games.Get(gameID)

	var kept []models.Wager
	for _, w := range rules.Wagers(bet) {
		w := w
		if err := rules.ValidateWager(&w); err != nil {
			slog.Warn("wager rejected",
				"game", gameID, "reference", bet.Reference, "index", w.Index, "error", err)
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		report.Rejected++
		return
	}

	valid := true
	bet.GameType = gameID
	bet.Wagers = kept
	bet.Valid = &valid
	bet.SourceImage = image
	bet.ImageHash = hash
	bet.ProcessedAt = now

	stored, err := s.betRepo.AppendBet(gameID, bet)
	if err != nil {
		slog.Error("bet not stored", "game", gameID, "reference", bet.Reference, "error", err)
		report.Rejected++
		return
	}
	if stored {
		report.BetsAdded++
	} else {
		report.Duplicates++
	}
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// normalizeGameID maps the free-form game name the extractor returns
// ("Euromilhões", "M1lhão", "EURO DREAMS") to a canonical game id. The
// stylized digit in "M1lhão" folds to "i" so both spellings match.
func normalizeGameID(name string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, r := range []struct{ from, to string }{
		{"ã", "a"}, {"õ", "o"}, {"é", "e"}, {"ê", "e"}, {"1", "i"}, {" ", ""}, {"-", ""},
	} {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	switch {
	case strings.Contains(s, "euromilh"):
		return games.EuroMillions, true
	case strings.Contains(s, "totoloto"):
		return games.Totoloto, true
	case strings.Contains(s, "dream"):
		return games.EuroDreams, true
	case strings.Contains(s, "milh"):
		return games.M1lhao, true
	}
	return "", false
}

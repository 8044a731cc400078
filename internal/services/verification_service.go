package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
)

// Compile-time check to ensure VerificationServiceImpl implements VerificationService
var _ VerificationService = (*VerificationServiceImpl)(nil)

// verifiedAtLayout is the timestamp format stored in every result record.
const verifiedAtLayout = "2006-01-02 15:04:05"

// VerificationServiceImpl orchestrates one game's verification run: load
// bets, load archives, resolve each bet to its draw, apply the game rules
// and merge the outcomes into the persisted result files.
type VerificationServiceImpl struct {
	betRepo     repositories.BetRepository
	archiveRepo repositories.DrawArchiveRepository
	resultRepo  repositories.ResultRepository
}

// NewVerificationService creates a new VerificationServiceImpl
func NewVerificationService(
	betRepo repositories.BetRepository,
	archiveRepo repositories.DrawArchiveRepository,
	resultRepo repositories.ResultRepository,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		betRepo:     betRepo,
		archiveRepo: archiveRepo,
		resultRepo:  resultRepo,
	}
}

// Run verifies every recorded bet of one game. A game with no recorded bets
// or no loadable archives produces an empty summary and writes nothing.
func (s *VerificationServiceImpl) Run(ctx context.Context, gameID string) (*models.RunSummary, error) {
	rules, ok := games.Get(gameID)
	if !ok {
		return nil, fmt.Errorf("unknown game %q", gameID)
	}

	summary := &models.RunSummary{Game: gameID, TierCounts: make(map[string]int)}

	bets, err := s.betRepo.LoadBets(gameID)
	if err != nil {
		return nil, err
	}
	if len(bets) == 0 {
		slog.Info("no bets recorded, nothing to verify", "game", gameID)
		return summary, nil
	}

	archives, err := s.archiveRepo.LoadArchive(rules)
	if err != nil {
		return nil, err
	}
	if len(archives) == 0 {
		slog.Warn("no draw archives available", "game", gameID)
		return summary, nil
	}

	now := time.Now().Format(verifiedAtLayout)
	var results []*models.VerificationResult
	for _, bet := range bets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		draw, method := resolveDraw(archives, bet)
		if draw == nil {
			slog.Warn("draw not found for bet",
				"game", gameID, "reference", bet.Reference, "date", bet.DrawDate)
			continue
		}
		for _, w := range rules.Wagers(bet) {
			w := w
			res := rules.Verify(&w, draw)
			if res == nil {
				continue
			}
			res.VerifiedAt = now
			res.Method = method
			res.Slip = models.SlipEcho{
				Reference:   bet.Reference,
				DrawDate:    bet.DrawDate,
				ContestID:   bet.ContestRef(),
				SourceImage: bet.SourceImage,
			}
			results = append(results, res)

			summary.Verified++
			if res.Won {
				summary.Won++
				for _, t := range res.Tiers {
					summary.TierCounts[t.Name]++
				}
			}
		}
	}

	added, total, err := s.resultRepo.Merge(rules, results)
	if err != nil {
		return nil, err
	}
	summary.Added = added
	summary.HistoryTotal = total

	slog.Info("verification run complete",
		"game", gameID,
		"verified", summary.Verified,
		"won", summary.Won,
		"added", added,
		"history", total)
	return summary, nil
}

// RunAll verifies every supported game in order. A failing game does not
// stop the others; the joined error reports every failure.
func (s *VerificationServiceImpl) RunAll(ctx context.Context) ([]*models.RunSummary, error) {
	var summaries []*models.RunSummary
	var errs []error
	for _, rules := range games.All() {
		summary, err := s.Run(ctx, rules.ID())
		if err != nil {
			slog.Error("verification run failed", "game", rules.ID(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", rules.ID(), err))
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, errors.Join(errs...)
}

// LookupCode searches the M1lhão archives for a winning code.
func (s *VerificationServiceImpl) LookupCode(ctx context.Context, code string) (*models.Draw, string, error) {
	rules, _ := games.Get(games.M1lhao)
	return s.archiveRepo.FindDrawByCode(rules, code)
}

// resolveDraw finds the draw a bet belongs to inside the loaded archives.
// Resolution is two-tiered: an exact (date, contest) index hit when the slip
// carries a contest id, otherwise a date-only scan of the slip's year. The
// reported method names which tier answered.
func resolveDraw(archives map[string]*repositories.YearArchive, bet *models.Bet) (*models.Draw, string) {
	if len(bet.DrawDate) < 4 {
		return nil, ""
	}
	arch, ok := archives[bet.DrawDate[:4]]
	if !ok {
		return nil, ""
	}
	localDate := isoToLocal(bet.DrawDate)

	if contest := bet.ContestRef(); contest != "" {
		if d, ok := arch.Index[repositories.IndexKey(localDate, contest)]; ok {
			return d, models.MethodDateAndContest
		}
	}
	for _, d := range arch.Draws {
		if d.Date == localDate {
			return d, models.MethodDateOnly
		}
	}
	return nil, ""
}

// isoToLocal converts a slip date (YYYY-MM-DD) to the archive's DD/MM/YYYY
// form. Unparseable dates pass through unchanged so a garbled slip simply
// fails resolution instead of aborting the run.
func isoToLocal(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

package services

import (
	"context"
	"math"
	"time"

	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
)

// Compile-time check to ensure StatisticsServiceImpl implements StatisticsService
var _ StatisticsService = (*StatisticsServiceImpl)(nil)

// StatisticsServiceImpl rebuilds the spend/winnings aggregates from scratch
// on every run: every recorded bet is re-verified against the archives and
// bucketed by month and year of its draw date.
type StatisticsServiceImpl struct {
	cfg         *config.Config
	betRepo     repositories.BetRepository
	archiveRepo repositories.DrawArchiveRepository
	statsRepo   repositories.StatisticsRepository
}

// NewStatisticsService creates a new StatisticsServiceImpl
func NewStatisticsService(
	cfg *config.Config,
	betRepo repositories.BetRepository,
	archiveRepo repositories.DrawArchiveRepository,
	statsRepo repositories.StatisticsRepository,
) *StatisticsServiceImpl {
	return &StatisticsServiceImpl{
		cfg:         cfg,
		betRepo:     betRepo,
		archiveRepo: archiveRepo,
		statsRepo:   statsRepo,
	}
}

// Generate computes and persists the full statistics file. Spend counts
// every wager whether or not its draw resolved; winnings only accrue from
// resolved, won wagers.
func (s *StatisticsServiceImpl) Generate(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{
		Monthly:   make(map[string]map[string]*models.PeriodStats),
		Annual:    make(map[string]map[string]*models.PeriodStats),
		UpdatedAt: time.Now().Format(verifiedAtLayout),
	}

	for _, rules := range games.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gameID := rules.ID()
		bets, err := s.betRepo.LoadBets(gameID)
		if err != nil {
			return nil, err
		}
		if len(bets) == 0 {
			continue
		}
		archives, err := s.archiveRepo.LoadArchive(rules)
		if err != nil {
			return nil, err
		}

		stake := rules.DefaultStake()
		if override, ok := s.cfg.Stakes[gameID]; ok {
			stake = override
		}

		for _, bet := range bets {
			if len(bet.DrawDate) < 7 {
				continue
			}
			month := bucket(stats.Monthly, gameID, bet.DrawDate[:7])
			year := bucket(stats.Annual, gameID, bet.DrawDate[:4])
			draw, _ := resolveDraw(archives, bet)

			for _, w := range rules.Wagers(bet) {
				w := w
				for _, p := range []*models.PeriodStats{month, year} {
					p.TotalWagers++
					p.TotalSpent += stake
				}
				if draw == nil {
					continue
				}
				res := rules.Verify(&w, draw)
				if res == nil {
					continue
				}
				for _, p := range []*models.PeriodStats{month, year} {
					if res.Won {
						p.WinningWagers++
						p.TotalWinnings += games.ParseValue(res.TotalValue)
					}
					if res.Matches != nil {
						p.NumberHits += res.Matches.Numbers
						p.SpecialHits += res.Matches.SpecialHits()
					}
				}
			}
		}
	}

	for _, byGame := range []map[string]map[string]*models.PeriodStats{stats.Monthly, stats.Annual} {
		for _, periods := range byGame {
			for _, p := range periods {
				p.Balance = round2(p.TotalWinnings - p.TotalSpent)
				p.TotalSpent = round2(p.TotalSpent)
				p.TotalWinnings = round2(p.TotalWinnings)
				if p.TotalWagers > 0 {
					p.HitPercentage = round2(100 * float64(p.WinningWagers) / float64(p.TotalWagers))
				}
			}
		}
	}

	if err := s.statsRepo.Save(stats); err != nil {
		return nil, err
	}
	slog.Info("statistics rebuilt", "games", len(stats.Annual))
	return stats, nil
}

func bucket(byGame map[string]map[string]*models.PeriodStats, gameID, period string) *models.PeriodStats {
	periods, ok := byGame[gameID]
	if !ok {
		periods = make(map[string]*models.PeriodStats)
		byGame[gameID] = periods
	}
	p, ok := periods[period]
	if !ok {
		p = &models.PeriodStats{}
		periods[period] = p
	}
	return p
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

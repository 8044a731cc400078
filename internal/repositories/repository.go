// Package repositories defines the store interfaces the services depend on.
// The production implementation is JSON files (package jsonfile) because the
// flat-file layout is the interchange contract with the web frontend and
// with previous runs; tests substitute in-memory fakes.
package repositories

import (
	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
)

// YearArchive is one year's worth of draws for a game, with the lookup
// structures the resolver needs: the primary (date, contest) index and, for
// draws carrying a winning code, a normalized-code index.
type YearArchive struct {
	Draws []*models.Draw
	// Index is keyed "DD/MM/YYYY|contest".
	Index map[string]*models.Draw
	// Codes is keyed by normalized winning code.
	Codes map[string]*models.Draw
}

// IndexKey builds the primary index key for a local date and contest id.
func IndexKey(localDate, contestID string) string {
	return localDate + "|" + contestID
}

// DrawArchiveRepository loads the historical draw archives of one game.
type DrawArchiveRepository interface {
	// LoadArchive enumerates and indexes every yearly archive file of the
	// game, skipping the "latest draw" sentinel and any file with an
	// unrecognized name or payload. Returns a map keyed by year ("2026").
	LoadArchive(rules games.Rules) (map[string]*YearArchive, error)
	// FindDrawByCode answers "has this code ever won", across all loaded
	// years, regardless of the date claimed on any slip.
	FindDrawByCode(rules games.Rules, code string) (*models.Draw, string, error)
}

// BetRepository loads and appends the per-game bet store.
type BetRepository interface {
	// LoadBets returns the game's recorded bets; a missing file is an
	// empty list, not an error.
	LoadBets(gameID string) ([]*models.Bet, error)
	// AppendBet adds a bet unless one with the same reference exists.
	// Reports whether the bet was stored.
	AppendBet(gameID string, bet *models.Bet) (bool, error)
}

// ResultRepository owns the two persisted result files per game: the
// append-only historical ledger and the per-run "recent results" snapshot.
type ResultRepository interface {
	// Merge appends results missing from the history (keyed by the
	// game's ledger key policy), rewrites the history file, and replaces
	// the recent-results snapshot with exactly this run's results.
	// Returns how many entries were added and the new history length.
	Merge(rules games.Rules, results []*models.VerificationResult) (added, total int, err error)
	LoadHistory(gameID string) ([]*models.VerificationResult, error)
	// LoadAllRecent returns every game's recent-results snapshot, keyed
	// by game id.
	LoadAllRecent() (map[string][]*models.VerificationResult, error)
}

// NotificationRepository persists the active and historical notification
// lists the frontend consumes.
type NotificationRepository interface {
	LoadActive() ([]*models.Notification, error)
	LoadHistory() ([]*models.Notification, error)
	SaveActive(list []*models.Notification) error
}

// StatisticsRepository persists the aggregate statistics file.
type StatisticsRepository interface {
	Save(stats *models.Statistics) error
	Load() (*models.Statistics, error)
}

// RegistryRepository tracks which uploaded images were already extracted,
// keyed by content hash.
type RegistryRepository interface {
	Load() (map[string]models.ProcessedImage, error)
	Save(registry map[string]models.ProcessedImage) error
}

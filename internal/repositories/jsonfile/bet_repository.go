package jsonfile

import (
	"fmt"
	"path/filepath"

	"github.com/jogossc/boletins-backend/internal/models"
)

// BetRepository reads and appends the per-game bet stores
// (apostas/<game>.json).
type BetRepository struct {
	store *Store
}

func NewBetRepository(store *Store) *BetRepository {
	return &BetRepository{store: store}
}

func (r *BetRepository) path(gameID string) string {
	return filepath.Join(r.store.BetsDir, gameID+".json")
}

// LoadBets returns the game's recorded bets. A missing file means no bets
// were recorded yet, which is a normal state, not an error.
func (r *BetRepository) LoadBets(gameID string) ([]*models.Bet, error) {
	var bets []*models.Bet
	if err := readJSON(r.path(gameID), &bets); err != nil {
		if notExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load bets for %s: %w", gameID, err)
	}
	return bets, nil
}

// AppendBet stores a bet unless one with the same unique reference already
// exists. The reference printed on the slip is the natural key; the same
// slip photographed twice must not be counted twice.
func (r *BetRepository) AppendBet(gameID string, bet *models.Bet) (bool, error) {
	bets, err := r.LoadBets(gameID)
	if err != nil {
		return false, err
	}
	for _, b := range bets {
		if b.Reference != "" && b.Reference == bet.Reference {
			return false, nil
		}
	}
	bets = append(bets, bet)
	if err := writeJSON(r.path(gameID), bets); err != nil {
		return false, fmt.Errorf("store bet for %s: %w", gameID, err)
	}
	return true, nil
}

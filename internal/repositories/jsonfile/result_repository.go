package jsonfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
)

// ResultRepository persists the two result files per game: the append-only
// history ledger (<game>_verificacoes.json) and the latest-run snapshot
// (<game>_recentes.json) the frontend shows on its landing page.
type ResultRepository struct {
	store *Store
}

func NewResultRepository(store *Store) *ResultRepository {
	return &ResultRepository{store: store}
}

func (r *ResultRepository) historyPath(gameID string) string {
	return filepath.Join(r.store.ResultsDir, gameID+"_verificacoes.json")
}

func (r *ResultRepository) recentPath(gameID string) string {
	return filepath.Join(r.store.ResultsDir, gameID+"_recentes.json")
}

// Merge appends to the history every result whose ledger key is not present
// yet, then replaces the recent snapshot with this run's full result list.
// The history only ever grows; re-running the same verification is a no-op
// on it. The snapshot is only written when the run produced results, so a
// run that verified nothing does not blank the frontend.
func (r *ResultRepository) Merge(rules games.Rules, results []*models.VerificationResult) (int, int, error) {
	history, err := r.LoadHistory(rules.ID())
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[string]struct{}, len(history))
	for _, res := range history {
		seen[rules.LedgerKey(res)] = struct{}{}
	}

	added := 0
	for _, res := range results {
		key := rules.LedgerKey(res)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		history = append(history, res)
		added++
	}

	if added > 0 {
		if err := writeJSON(r.historyPath(rules.ID()), history); err != nil {
			return 0, 0, fmt.Errorf("store history for %s: %w", rules.ID(), err)
		}
	}
	if len(results) > 0 {
		if err := writeJSON(r.recentPath(rules.ID()), results); err != nil {
			return 0, 0, fmt.Errorf("store recent results for %s: %w", rules.ID(), err)
		}
	}
	return added, len(history), nil
}

func (r *ResultRepository) LoadHistory(gameID string) ([]*models.VerificationResult, error) {
	var history []*models.VerificationResult
	if err := readJSON(r.historyPath(gameID), &history); err != nil {
		if notExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history for %s: %w", gameID, err)
	}
	return history, nil
}

// LoadAllRecent collects every game's recent snapshot, keyed by game id.
func (r *ResultRepository) LoadAllRecent() (map[string][]*models.VerificationResult, error) {
	paths, err := filepath.Glob(filepath.Join(r.store.ResultsDir, "*_recentes.json"))
	if err != nil {
		return nil, fmt.Errorf("glob recent results: %w", err)
	}
	all := make(map[string][]*models.VerificationResult)
	for _, path := range paths {
		gameID := strings.TrimSuffix(filepath.Base(path), "_recentes.json")
		var results []*models.VerificationResult
		if err := readJSON(path, &results); err != nil {
			return nil, fmt.Errorf("load recent results for %s: %w", gameID, err)
		}
		all[gameID] = results
	}
	return all, nil
}

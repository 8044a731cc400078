package jsonfile

import (
	"fmt"
	"path/filepath"

	"github.com/jogossc/boletins-backend/internal/models"
)

// StatisticsRepository persists the aggregate statistics file
// (estatisticas_completas.json), rebuilt wholesale on every run.
type StatisticsRepository struct {
	store *Store
}

func NewStatisticsRepository(store *Store) *StatisticsRepository {
	return &StatisticsRepository{store: store}
}

func (r *StatisticsRepository) path() string {
	return filepath.Join(r.store.ResultsDir, "estatisticas_completas.json")
}

func (r *StatisticsRepository) Save(stats *models.Statistics) error {
	if err := writeJSON(r.path(), stats); err != nil {
		return fmt.Errorf("store statistics: %w", err)
	}
	return nil
}

func (r *StatisticsRepository) Load() (*models.Statistics, error) {
	var stats models.Statistics
	if err := readJSON(r.path(), &stats); err != nil {
		if notExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return &stats, nil
}

package jsonfile

import (
	"fmt"
	"path/filepath"

	"github.com/jogossc/boletins-backend/internal/models"
)

// RegistryRepository persists the upload-processing registry
// (apostas/registo_processamento.json): content hash of every image already
// extracted, so re-processing the uploads folder is idempotent.
type RegistryRepository struct {
	store *Store
}

func NewRegistryRepository(store *Store) *RegistryRepository {
	return &RegistryRepository{store: store}
}

func (r *RegistryRepository) path() string {
	return filepath.Join(r.store.BetsDir, "registo_processamento.json")
}

func (r *RegistryRepository) Load() (map[string]models.ProcessedImage, error) {
	registry := make(map[string]models.ProcessedImage)
	if err := readJSON(r.path(), &registry); err != nil {
		if notExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("load processing registry: %w", err)
	}
	return registry, nil
}

func (r *RegistryRepository) Save(registry map[string]models.ProcessedImage) error {
	if err := writeJSON(r.path(), registry); err != nil {
		return fmt.Errorf("store processing registry: %w", err)
	}
	return nil
}

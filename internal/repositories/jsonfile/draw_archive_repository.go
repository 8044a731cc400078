package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
)

// DrawArchiveRepository loads the yearly draw archives from the draws
// directory. Archives are read fresh on every call; a verification run is a
// batch job, not a hot path.
type DrawArchiveRepository struct {
	store *Store
}

func NewDrawArchiveRepository(store *Store) *DrawArchiveRepository {
	return &DrawArchiveRepository{store: store}
}

// LoadArchive loads every yearly archive matching the game's filename
// pattern. Files with unexpected names or payloads are logged and skipped;
// one bad file must not sink the whole run.
func (r *DrawArchiveRepository) LoadArchive(rules games.Rules) (map[string]*repositories.YearArchive, error) {
	pattern := filepath.Join(r.store.DrawsDir, rules.ArchiveGlob())
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	archives := make(map[string]*repositories.YearArchive)
	for _, path := range paths {
		name := filepath.Base(path)
		if name == rules.SentinelFile() {
			continue
		}
		m := rules.YearPattern().FindStringSubmatch(name)
		if m == nil {
			slog.Warn("archive file ignored, unrecognized name", "game", rules.ID(), "file", name)
			continue
		}
		year := m[1]

		draws, err := readArchiveFile(path, year)
		if err != nil {
			slog.Warn("archive file ignored", "game", rules.ID(), "file", name, "error", err)
			continue
		}

		arch := &repositories.YearArchive{
			Draws: draws,
			Index: make(map[string]*models.Draw, len(draws)),
			Codes: make(map[string]*models.Draw),
		}
		for _, d := range draws {
			arch.Index[repositories.IndexKey(d.Date, d.ContestID.String())] = d
			if d.Code != "" {
				arch.Codes[games.NormalizeCode(d.Code)] = d
			}
		}
		archives[year] = arch
		slog.Debug("archive loaded", "game", rules.ID(), "year", year, "draws", len(draws))
	}
	return archives, nil
}

// readArchiveFile accepts the two payload shapes found in the wild: an
// object keyed by year ({"2026": [...]}) or a bare draw array.
func readArchiveFile(path, year string) ([]*models.Draw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var byYear map[string][]*models.Draw
	if err := json.Unmarshal(data, &byYear); err == nil {
		if draws, ok := byYear[year]; ok {
			return draws, nil
		}
		// Keyed by a different year than the filename claims; take
		// whatever single list is present rather than dropping the file.
		for _, draws := range byYear {
			return draws, nil
		}
		return nil, nil
	}

	var draws []*models.Draw
	if err := json.Unmarshal(data, &draws); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return draws, nil
}

// FindDrawByCode scans every year of the game's archive for a draw whose
// winning code matches. Used by the direct code lookup endpoint, which
// answers independently of any slip's claimed date.
func (r *DrawArchiveRepository) FindDrawByCode(rules games.Rules, code string) (*models.Draw, string, error) {
	archives, err := r.LoadArchive(rules)
	if err != nil {
		return nil, "", err
	}
	want := games.NormalizeCode(code)
	for year, arch := range archives {
		if d, ok := arch.Codes[want]; ok {
			return d, year, nil
		}
	}
	return nil, "", nil
}

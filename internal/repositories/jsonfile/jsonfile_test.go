package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(
		filepath.Join(dir, "apostas"),
		filepath.Join(dir, "dados"),
		filepath.Join(dir, "resultados"),
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDrawArchiveLoading(t *testing.T) {
	store := testStore(t)
	rules, _ := games.Get(games.EuroMillions)

	// Year-keyed payload.
	writeFile(t, filepath.Join(store.DrawsDir, "euromilhoes_2026.json"), `{
		"2026": [
			{"concurso": "021/2026", "data": "24/02/2026", "chave": "13 24 28 33 35 + 5 9",
			 "premios": [{"premio": "1.º Prémio", "valor": "€ 17.000.000,00"}]},
			{"concurso": "022/2026", "data": "27/02/2026", "chave": "1 2 3 4 5 + 6 7"}
		]
	}`)
	// Bare-array payload.
	writeFile(t, filepath.Join(store.DrawsDir, "euromilhoes_2025.json"), `[
		{"concurso": "104/2025", "data": "30/12/2025", "chave": "7 8 9 10 11 + 1 2"}
	]`)
	// Sentinel and garbage must both be skipped.
	writeFile(t, filepath.Join(store.DrawsDir, "euromilhoes_atual.json"), `{"2026": []}`)
	writeFile(t, filepath.Join(store.DrawsDir, "euromilhoes_2024.json"), `not json at all`)

	repo := NewDrawArchiveRepository(store)
	archives, err := repo.LoadArchive(rules)
	require.NoError(t, err)
	require.Len(t, archives, 2)

	arch2026 := archives["2026"]
	require.NotNil(t, arch2026)
	assert.Len(t, arch2026.Draws, 2)
	d, ok := arch2026.Index["24/02/2026|021/2026"]
	require.True(t, ok)
	assert.Equal(t, "13 24 28 33 35 + 5 9", d.Key)

	arch2025 := archives["2025"]
	require.NotNil(t, arch2025)
	assert.Len(t, arch2025.Draws, 1)

	_, bad := archives["2024"]
	assert.False(t, bad)
}

func TestDrawArchiveNumericContestIDs(t *testing.T) {
	store := testStore(t)
	rules, _ := games.Get(games.Totoloto)

	// Contest ids sometimes arrive as JSON numbers.
	writeFile(t, filepath.Join(store.DrawsDir, "totoloto_sc_2026.json"), `{
		"2026": [{"concurso": 8, "data": "25/02/2026", "numeros": ["3","17","22","38","44"], "especial": 7}]
	}`)

	repo := NewDrawArchiveRepository(store)
	archives, err := repo.LoadArchive(rules)
	require.NoError(t, err)
	require.Contains(t, archives, "2026")
	_, ok := archives["2026"].Index["25/02/2026|8"]
	assert.True(t, ok)
}

func TestFindDrawByCode(t *testing.T) {
	store := testStore(t)
	rules, _ := games.Get(games.M1lhao)

	writeFile(t, filepath.Join(store.DrawsDir, "milhao_2026.json"), `{
		"2026": [{"concurso": "021/2026", "data": "27/02/2026", "codigo": "GQC 37079"}]
	}`)

	repo := NewDrawArchiveRepository(store)
	draw, year, err := repo.FindDrawByCode(rules, "gqc37079")
	require.NoError(t, err)
	require.NotNil(t, draw)
	assert.Equal(t, "2026", year)
	assert.Equal(t, "27/02/2026", draw.Date)

	draw, _, err = repo.FindDrawByCode(rules, "AAA11111")
	require.NoError(t, err)
	assert.Nil(t, draw)
}

func TestBetRepository(t *testing.T) {
	store := testStore(t)
	repo := NewBetRepository(store)

	// Missing file is an empty list.
	bets, err := repo.LoadBets(games.EuroMillions)
	require.NoError(t, err)
	assert.Empty(t, bets)

	stored, err := repo.AppendBet(games.EuroMillions, &models.Bet{Reference: "REF-1", DrawDate: "2026-02-24"})
	require.NoError(t, err)
	assert.True(t, stored)

	// Same reference again is a duplicate.
	stored, err = repo.AppendBet(games.EuroMillions, &models.Bet{Reference: "REF-1", DrawDate: "2026-02-27"})
	require.NoError(t, err)
	assert.False(t, stored)

	stored, err = repo.AppendBet(games.EuroMillions, &models.Bet{Reference: "REF-2", DrawDate: "2026-02-24"})
	require.NoError(t, err)
	assert.True(t, stored)

	bets, err = repo.LoadBets(games.EuroMillions)
	require.NoError(t, err)
	require.Len(t, bets, 2)
	assert.Equal(t, "REF-1", bets[0].Reference)
	// First write wins for a duplicated reference.
	assert.Equal(t, "2026-02-24", bets[0].DrawDate)
}

func result(ref string, index int, verifiedAt string) *models.VerificationResult {
	return &models.VerificationResult{
		VerifiedAt: verifiedAt,
		Slip:       models.SlipEcho{Reference: ref, DrawDate: "2026-02-24"},
		Wager:      models.WagerEcho{Index: index},
	}
}

func TestResultMergeIsIdempotent(t *testing.T) {
	store := testStore(t)
	repo := NewResultRepository(store)
	rules, _ := games.Get(games.EuroMillions)

	run := []*models.VerificationResult{
		result("REF-1", 1, "2026-02-24 22:00:00"),
		result("REF-1", 2, "2026-02-24 22:00:00"),
	}
	added, total, err := repo.Merge(rules, run)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, total)

	// Re-running the same results adds nothing even with a new timestamp.
	rerun := []*models.VerificationResult{
		result("REF-1", 1, "2026-02-25 22:00:00"),
		result("REF-1", 2, "2026-02-25 22:00:00"),
		result("REF-2", 1, "2026-02-25 22:00:00"),
	}
	added, total, err = repo.Merge(rules, rerun)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 3, total)
}

// The totoloto ledger keys on the timestamp as well, so every run appends.
func TestResultMergeTotolotoAppendsPerRun(t *testing.T) {
	store := testStore(t)
	repo := NewResultRepository(store)
	rules, _ := games.Get(games.Totoloto)

	added, total, err := repo.Merge(rules, []*models.VerificationResult{result("REF-1", 1, "2026-02-24 22:00:00")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, total)

	added, total, err = repo.Merge(rules, []*models.VerificationResult{result("REF-1", 1, "2026-02-25 22:00:00")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, total)
}

func TestRecentSnapshotOverwrite(t *testing.T) {
	store := testStore(t)
	repo := NewResultRepository(store)
	rules, _ := games.Get(games.EuroMillions)

	_, _, err := repo.Merge(rules, []*models.VerificationResult{
		result("REF-1", 1, "2026-02-24 22:00:00"),
		result("REF-2", 1, "2026-02-24 22:00:00"),
	})
	require.NoError(t, err)

	_, _, err = repo.Merge(rules, []*models.VerificationResult{result("REF-3", 1, "2026-02-27 22:00:00")})
	require.NoError(t, err)

	recent, err := repo.LoadAllRecent()
	require.NoError(t, err)
	require.Len(t, recent[games.EuroMillions], 1)
	assert.Equal(t, "REF-3", recent[games.EuroMillions][0].Slip.Reference)

	// An empty run leaves the snapshot alone.
	_, _, err = repo.Merge(rules, nil)
	require.NoError(t, err)
	recent, err = repo.LoadAllRecent()
	require.NoError(t, err)
	assert.Len(t, recent[games.EuroMillions], 1)
}

func TestNotificationRepository(t *testing.T) {
	store := testStore(t)
	repo := NewNotificationRepository(store)

	active, err := repo.LoadActive()
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.SaveActive([]*models.Notification{{ID: "euromilhoes_REF-1_1", Game: games.EuroMillions}}))
	active, err = repo.LoadActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "euromilhoes_REF-1_1", active[0].ID)

	history, err := repo.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStatisticsRepository(t *testing.T) {
	store := testStore(t)
	repo := NewStatisticsRepository(store)

	stats, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, stats)

	in := &models.Statistics{
		Monthly: map[string]map[string]*models.PeriodStats{
			games.Totoloto: {"2026-02": {TotalWagers: 3, TotalSpent: 3}},
		},
		Annual:    map[string]map[string]*models.PeriodStats{},
		UpdatedAt: "2026-02-25 22:00:00",
	}
	require.NoError(t, repo.Save(in))

	stats, err = repo.Load()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Monthly[games.Totoloto]["2026-02"].TotalWagers)
}

func TestRegistryRepository(t *testing.T) {
	store := testStore(t)
	repo := NewRegistryRepository(store)

	registry, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, registry)

	registry["abc123"] = models.ProcessedImage{File: "boletim.jpg", Date: "2026-02-25 22:00:00"}
	require.NoError(t, repo.Save(registry))

	registry, err = repo.Load()
	require.NoError(t, err)
	require.Contains(t, registry, "abc123")
	assert.Equal(t, "boletim.jpg", registry["abc123"].File)
}

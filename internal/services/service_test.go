package services

import (
	"context"

	"github.com/jogossc/boletins-backend/internal/games"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/internal/repositories"
	"github.com/jogossc/boletins-backend/pkg/ocr"
)

// In-memory repository fakes shared by the service tests.

type fakeBetRepo struct {
	bets map[string][]*models.Bet
}

func newFakeBetRepo() *fakeBetRepo {
	return &fakeBetRepo{bets: make(map[string][]*models.Bet)}
}

func (f *fakeBetRepo) LoadBets(gameID string) ([]*models.Bet, error) {
	return f.bets[gameID], nil
}

func (f *fakeBetRepo) AppendBet(gameID string, bet *models.Bet) (bool, error) {
	for _, b := range f.bets[gameID] {
		if b.Reference != "" && b.Reference == bet.Reference {
			return false, nil
		}
	}
	f.bets[gameID] = append(f.bets[gameID], bet)
	return true, nil
}

type fakeArchiveRepo struct {
	archives map[string]map[string]*repositories.YearArchive
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{archives: make(map[string]map[string]*repositories.YearArchive)}
}

func (f *fakeArchiveRepo) addDraws(gameID, year string, draws ...*models.Draw) {
	if f.archives[gameID] == nil {
		f.archives[gameID] = make(map[string]*repositories.YearArchive)
	}
	arch := &repositories.YearArchive{
		Index: make(map[string]*models.Draw),
		Codes: make(map[string]*models.Draw),
	}
	for _, d := range draws {
		arch.Draws = append(arch.Draws, d)
		arch.Index[repositories.IndexKey(d.Date, d.ContestID.String())] = d
		if d.Code != "" {
			arch.Codes[games.NormalizeCode(d.Code)] = d
		}
	}
	f.archives[gameID][year] = arch
}

func (f *fakeArchiveRepo) LoadArchive(rules games.Rules) (map[string]*repositories.YearArchive, error) {
	return f.archives[rules.ID()], nil
}

func (f *fakeArchiveRepo) FindDrawByCode(rules games.Rules, code string) (*models.Draw, string, error) {
	want := games.NormalizeCode(code)
	for year, arch := range f.archives[rules.ID()] {
		if d, ok := arch.Codes[want]; ok {
			return d, year, nil
		}
	}
	return nil, "", nil
}

type fakeResultRepo struct {
	history map[string][]*models.VerificationResult
	recent  map[string][]*models.VerificationResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		history: make(map[string][]*models.VerificationResult),
		recent:  make(map[string][]*models.VerificationResult),
	}
}

func (f *fakeResultRepo) Merge(rules games.Rules, results []*models.VerificationResult) (int, int, error) {
	seen := make(map[string]struct{})
	for _, r := range f.history[rules.ID()] {
		seen[rules.LedgerKey(r)] = struct{}{}
	}
	added := 0
	for _, r := range results {
		key := rules.LedgerKey(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		f.history[rules.ID()] = append(f.history[rules.ID()], r)
		added++
	}
	if len(results) > 0 {
		f.recent[rules.ID()] = results
	}
	return added, len(f.history[rules.ID()]), nil
}

func (f *fakeResultRepo) LoadHistory(gameID string) ([]*models.VerificationResult, error) {
	return f.history[gameID], nil
}

func (f *fakeResultRepo) LoadAllRecent() (map[string][]*models.VerificationResult, error) {
	return f.recent, nil
}

type fakeNotificationRepo struct {
	active  []*models.Notification
	history []*models.Notification
	saves   int
}

func (f *fakeNotificationRepo) LoadActive() ([]*models.Notification, error)  { return f.active, nil }
func (f *fakeNotificationRepo) LoadHistory() ([]*models.Notification, error) { return f.history, nil }
func (f *fakeNotificationRepo) SaveActive(list []*models.Notification) error {
	f.active = list
	f.saves++
	return nil
}

type fakeStatisticsRepo struct {
	saved *models.Statistics
}

func (f *fakeStatisticsRepo) Save(stats *models.Statistics) error { f.saved = stats; return nil }
func (f *fakeStatisticsRepo) Load() (*models.Statistics, error)   { return f.saved, nil }

type fakeRegistryRepo struct {
	registry map[string]models.ProcessedImage
	saves    int
}

func newFakeRegistryRepo() *fakeRegistryRepo {
	return &fakeRegistryRepo{registry: make(map[string]models.ProcessedImage)}
}

func (f *fakeRegistryRepo) Load() (map[string]models.ProcessedImage, error) {
	return f.registry, nil
}

func (f *fakeRegistryRepo) Save(registry map[string]models.ProcessedImage) error {
	f.registry = registry
	f.saves++
	return nil
}

type fakeExtractor struct {
	extraction *ocr.Extraction
	err        error
	calls      int
}

func (f *fakeExtractor) ExtractSlip(ctx context.Context, imagePath string) (*ocr.Extraction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.extraction, nil
}

// Interface conformance for the fakes.
var (
	_ repositories.BetRepository          = (*fakeBetRepo)(nil)
	_ repositories.DrawArchiveRepository  = (*fakeArchiveRepo)(nil)
	_ repositories.ResultRepository       = (*fakeResultRepo)(nil)
	_ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)
	_ repositories.StatisticsRepository   = (*fakeStatisticsRepo)(nil)
	_ repositories.RegistryRepository     = (*fakeRegistryRepo)(nil)
	_ SlipExtractor                       = (*fakeExtractor)(nil)
)

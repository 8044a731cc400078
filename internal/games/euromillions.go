package games

import (
	"fmt"
	"regexp"

	"github.com/jogossc/boletins-backend/internal/models"
)

// Euromilhões: 5 numbers in 1-50, 2 stars in 1-12. The winning combination
// is stored as a "chave" string; the tier is a straight lookup on the
// (numbers, stars) pair with no accumulation.
type euroMillionsRules struct{}

// Thirteen tiers down to 2+0. Pairs absent from the map (e.g. 1+1) win
// nothing regardless of the draw's payout table.
var euroMillionsTiers = map[[2]int]string{
	{5, 2}: "1.º Prémio",
	{5, 1}: "2.º Prémio",
	{5, 0}: "3.º Prémio",
	{4, 2}: "4.º Prémio",
	{4, 1}: "5.º Prémio",
	{3, 2}: "6.º Prémio",
	{4, 0}: "7.º Prémio",
	{2, 2}: "8.º Prémio",
	{3, 1}: "9.º Prémio",
	{3, 0}: "10.º Prémio",
	{1, 2}: "11.º Prémio",
	{2, 1}: "12.º Prémio",
	{2, 0}: "13.º Prémio",
}

var euroMillionsYear = regexp.MustCompile(`^euromilhoes_(\d{4})\.json$`)

func (euroMillionsRules) ID() string                  { return EuroMillions }
func (euroMillionsRules) ArchiveGlob() string         { return "euromilhoes_*.json" }
func (euroMillionsRules) SentinelFile() string        { return "euromilhoes_atual.json" }
func (euroMillionsRules) YearPattern() *regexp.Regexp { return euroMillionsYear }
func (euroMillionsRules) DefaultStake() float64       { return 2.5 }

func (euroMillionsRules) Wagers(b *models.Bet) []models.Wager { return b.Wagers }

func (euroMillionsRules) ValidateWager(w *models.Wager) error {
	if err := checkNumbers(w.Numbers, 5, 50); err != nil {
		return err
	}
	if len(w.Stars) != 2 {
		return fmt.Errorf("%w: expected 2 stars, got %d", ErrMalformedWager, len(w.Stars))
	}
	for _, s := range w.Stars {
		if err := checkRange(s, 12, "star"); err != nil {
			return err
		}
	}
	if pad2(w.Stars[0].String()) == pad2(w.Stars[1].String()) {
		return fmt.Errorf("%w: duplicate star %q", ErrMalformedWager, w.Stars[0].String())
	}
	return nil
}

func (euroMillionsRules) Verify(w *models.Wager, d *models.Draw) *models.VerificationResult {
	wagerNums := padAll(w.Numbers)
	wagerStars := padAll(w.Stars)
	drawNums, drawStars := splitKey(d.Key)

	matchedNums := overlap(wagerNums, drawNums)
	matchedStars := overlap(wagerStars, drawStars)

	r := &models.VerificationResult{
		Wager: models.WagerEcho{
			Index:   w.Index,
			Numbers: wagerNums,
			Stars:   wagerStars,
		},
		Draw: models.DrawEcho{
			ContestID: d.ContestID.String(),
			Date:      d.Date,
			Key:       d.Key,
			Numbers:   drawNums,
			Stars:     drawStars,
		},
		Matches: &models.MatchCounts{
			Numbers:     matchedNums,
			Stars:       &matchedStars,
			Description: fmt.Sprintf("%d número(s) e %d estrela(s)", matchedNums, matchedStars),
		},
	}

	var won []models.PrizeTier
	if name, ok := euroMillionsTiers[[2]int{matchedNums, matchedStars}]; ok {
		if tier, found := findTier(d, name); found {
			won = append(won, tier)
		}
	}
	applyTiers(r, won, matchedNums > 0 || matchedStars > 0)
	return r
}

func (euroMillionsRules) LedgerKey(r *models.VerificationResult) string {
	return fmt.Sprintf("%s|%d", r.Slip.Reference, r.Wager.Index)
}

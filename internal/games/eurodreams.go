package games

import (
	"fmt"
	"regexp"

	"github.com/jogossc/boletins-backend/internal/models"
)

// EuroDreams: 6 numbers in 1-40 plus a dream number in 1-5. Exact-key
// tier lookup; below six numbers only the dream-less combinations pay,
// so e.g. 5 numbers plus the dream win nothing.
type euroDreamsRules struct{}

var euroDreamsTiers = map[[2]int]string{
	{6, 1}: "1.º Prémio",
	{6, 0}: "2.º Prémio",
	{5, 0}: "3.º Prémio",
	{4, 0}: "4.º Prémio",
	{3, 0}: "5.º Prémio",
	{2, 0}: "6.º Prémio",
}

var euroDreamsYear = regexp.MustCompile(`^eurodreams_(\d{4})\.json$`)

func (euroDreamsRules) ID() string                  { return EuroDreams }
func (euroDreamsRules) ArchiveGlob() string         { return "eurodreams_*.json" }
func (euroDreamsRules) SentinelFile() string        { return "eurodreams_atual.json" }
func (euroDreamsRules) YearPattern() *regexp.Regexp { return euroDreamsYear }
func (euroDreamsRules) DefaultStake() float64       { return 2.5 }

func (euroDreamsRules) Wagers(b *models.Bet) []models.Wager { return b.Wagers }

func (euroDreamsRules) ValidateWager(w *models.Wager) error {
	if err := checkNumbers(w.Numbers, 6, 40); err != nil {
		return err
	}
	return checkRange(models.FlexString(w.DreamRef()), 5, "dream number")
}

func (euroDreamsRules) Verify(w *models.Wager, d *models.Draw) *models.VerificationResult {
	wagerNums := padAll(w.Numbers)
	wagerDream := pad2(w.DreamRef())
	drawNums, drawSpecial := splitKey(d.Key)
	drawDream := ""
	if len(drawSpecial) > 0 {
		drawDream = drawSpecial[0]
	}

	matchedNums := overlap(wagerNums, drawNums)
	dreamHit := wagerDream != "" && wagerDream == drawDream

	conj := "sem"
	if dreamHit {
		conj = "com"
	}
	r := &models.VerificationResult{
		Wager: models.WagerEcho{
			Index:       w.Index,
			Numbers:     wagerNums,
			DreamNumber: wagerDream,
		},
		Draw: models.DrawEcho{
			ContestID:   d.ContestID.String(),
			Date:        d.Date,
			Key:         d.Key,
			Numbers:     drawNums,
			DreamNumber: drawDream,
		},
		Matches: &models.MatchCounts{
			Numbers:     matchedNums,
			DreamNumber: &dreamHit,
			Description: fmt.Sprintf("%d número(s) %s Dream Number", matchedNums, conj),
		},
	}

	dream := 0
	if dreamHit {
		dream = 1
	}
	var won []models.PrizeTier
	if name, ok := euroDreamsTiers[[2]int{matchedNums, dream}]; ok {
		if tier, found := findTier(d, name); found {
			won = append(won, tier)
		}
	}
	applyTiers(r, won, matchedNums > 0)
	return r
}

func (euroDreamsRules) LedgerKey(r *models.VerificationResult) string {
	return fmt.Sprintf("%s|%d", r.Slip.Reference, r.Wager.Index)
}

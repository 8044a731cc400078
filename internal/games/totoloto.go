package games

import (
	"fmt"
	"regexp"

	"github.com/jogossc/boletins-backend/internal/models"
)

// Totoloto: 5 numbers in 1-49 plus a lucky number ("Nº da Sorte") in 1-13.
// The only game with prize accumulation: a lucky-number hit always earns the
// reimbursement tier on top of any numbers tier, and a full 5+lucky hit
// promotes to the 1.º Prémio, replacing the 5-numbers tier so its value is
// never counted twice.
type totolotoRules struct{}

const (
	totolotoTopTier   = "1.º Prémio"
	totolotoFiveTier  = "2.º Prémio"
	totolotoLuckyTier = "Nº da Sorte"
)

// Numbers-only tiers; fewer than 2 matched numbers wins nothing by itself.
var totolotoNumberTiers = map[int]string{
	5: totolotoFiveTier,
	4: "3.º Prémio",
	3: "4.º Prémio",
	2: "5.º Prémio",
}

var totolotoYear = regexp.MustCompile(`^totoloto_sc_(\d{4})\.json$`)

func (totolotoRules) ID() string                  { return Totoloto }
func (totolotoRules) ArchiveGlob() string         { return "totoloto_sc_*.json" }
func (totolotoRules) SentinelFile() string        { return "totoloto_sc_atual.json" }
func (totolotoRules) YearPattern() *regexp.Regexp { return totolotoYear }
func (totolotoRules) DefaultStake() float64       { return 1.0 }

func (totolotoRules) Wagers(b *models.Bet) []models.Wager { return b.Wagers }

func (totolotoRules) ValidateWager(w *models.Wager) error {
	if err := checkNumbers(w.Numbers, 5, 49); err != nil {
		return err
	}
	return checkRange(w.LuckyNumber, 13, "lucky number")
}

func (totolotoRules) Verify(w *models.Wager, d *models.Draw) *models.VerificationResult {
	wagerNums := padAll(w.Numbers)
	wagerLucky := pad2(w.LuckyNumber.String())
	drawNums := padAll(d.Numbers)
	drawLucky := pad2(d.Special.String())

	matchedNums := overlap(wagerNums, drawNums)
	luckyHit := wagerLucky != "" && wagerLucky == drawLucky

	conj := "sem"
	if luckyHit {
		conj = "com"
	}
	r := &models.VerificationResult{
		Wager: models.WagerEcho{
			Index:       w.Index,
			Numbers:     wagerNums,
			LuckyNumber: wagerLucky,
		},
		Draw: models.DrawEcho{
			ContestID:   d.ContestID.String(),
			Date:        d.Date,
			Numbers:     drawNums,
			LuckyNumber: drawLucky,
		},
		Matches: &models.MatchCounts{
			Numbers:     matchedNums,
			LuckyNumber: &luckyHit,
			Description: fmt.Sprintf("%d número(s) %s Nº da Sorte", matchedNums, conj),
		},
	}

	var won []models.PrizeTier
	if luckyHit {
		if tier, found := findTier(d, totolotoLuckyTier); found {
			won = append(won, tier)
		}
	}
	if matchedNums >= 2 {
		if name, ok := totolotoNumberTiers[matchedNums]; ok {
			if tier, found := findTier(d, name); found {
				won = append(won, tier)
			}
		}
	}
	if matchedNums == 5 && luckyHit {
		if top, found := findTier(d, totolotoTopTier); found {
			kept := won[:0]
			for _, t := range won {
				if t.Name != totolotoFiveTier {
					kept = append(kept, t)
				}
			}
			won = append(kept, top)
		}
	}
	applyTiers(r, won, matchedNums > 0 || luckyHit)
	return r
}

// LedgerKey includes the verification timestamp, unlike the other games:
// the historical ledger therefore accumulates one entry per run for the same
// wager. Kept as-is so re-run behaviour stays byte-compatible with existing
// ledgers; see DESIGN.md.
func (totolotoRules) LedgerKey(r *models.VerificationResult) string {
	return fmt.Sprintf("%s|%d|%s", r.Slip.Reference, r.Wager.Index, r.VerifiedAt)
}

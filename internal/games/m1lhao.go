package games

import (
	"fmt"
	"regexp"

	"github.com/jogossc/boletins-backend/internal/models"
)

// M1lhão: a fixed-code raffle drawn alongside Euromilhões. One winning code
// per draw, one fixed prize; verification is normalized code equality.
type m1lhaoRules struct{}

// The prize is fixed by the game rules, not by the draw's payout table.
const m1lhaoPrizeValue = "€ 1.000.000,00"

var (
	m1lhaoYear       = regexp.MustCompile(`^milhao_(\d{4})\.json$`)
	m1lhaoCodeFormat = regexp.MustCompile(`^[A-Z]{3}\d{5}$`)
)

func (m1lhaoRules) ID() string                  { return M1lhao }
func (m1lhaoRules) ArchiveGlob() string         { return "milhao_*.json" }
func (m1lhaoRules) SentinelFile() string        { return "milhao_atual.json" }
func (m1lhaoRules) YearPattern() *regexp.Regexp { return m1lhaoYear }
func (m1lhaoRules) DefaultStake() float64       { return 1.0 }

// Wagers tolerates the legacy shape where the code sits on the bet itself
// instead of inside an apostas entry.
func (m1lhaoRules) Wagers(b *models.Bet) []models.Wager {
	if len(b.Wagers) == 0 && b.Code != "" {
		return []models.Wager{{Index: 1, Code: b.Code}}
	}
	return b.Wagers
}

func (m1lhaoRules) ValidateWager(w *models.Wager) error {
	code := NormalizeCode(w.Code)
	if !m1lhaoCodeFormat.MatchString(code) {
		return fmt.Errorf("%w: code %q is not 3 letters + 5 digits", ErrMalformedWager, w.Code)
	}
	return nil
}

func (m1lhaoRules) Verify(w *models.Wager, d *models.Draw) *models.VerificationResult {
	code := NormalizeCode(w.Code)
	if code == "" {
		return nil
	}
	winning := NormalizeCode(d.Code)

	prizeName := d.PrizeName
	if prizeName == "" {
		prizeName = "1.º Prémio"
	}
	winners := d.Winners.String()
	if winners == "" {
		winners = "1"
	}

	r := &models.VerificationResult{
		Wager: models.WagerEcho{
			Index:        w.Index,
			Code:         code,
			CodeOriginal: w.Code,
		},
		Draw: models.DrawEcho{
			ContestID:    d.ContestID.String(),
			Date:         d.Date,
			WinningCode:  winning,
			CodeOriginal: d.Code,
			PrizeName:    prizeName,
			Winners:      winners,
		},
	}

	if code == winning {
		r.Won = true
		r.TotalValue = m1lhaoPrizeValue
		r.Prize = &models.PrizeOutcome{
			Category:    prizeName,
			Description: "Código premiado",
			Value:       m1lhaoPrizeValue,
			Winners:     winners,
		}
	} else {
		r.Prize = &models.PrizeOutcome{
			Category:    models.NoPrizeCategory,
			Description: "Código não premiado",
			Value:       "€ 0,00",
		}
	}
	return r
}

func (m1lhaoRules) LedgerKey(r *models.VerificationResult) string {
	return fmt.Sprintf("%s|%d", r.Slip.Reference, r.Wager.Index)
}

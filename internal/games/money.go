package games

import (
	"strconv"
	"strings"

	"github.com/jogossc/boletins-backend/internal/models"
)

// ReimbursementValue is the fixed worth of a "Reembolso" tier: the stake of
// one simple wager (€1,00).
const ReimbursementValue = 1.0

const reimbursementMarker = "Reembolso"

// ParseValue converts a scraped prize value ("€ 1.234,56") to a float.
// The archives use pt-PT formatting: dot as thousands separator, comma as
// decimal separator, "€ " prefix. Any value containing the reimbursement
// marker is worth the fixed stake; anything unparseable is worth zero so a
// bad scrape never aborts a verification.
func ParseValue(s string) float64 {
	if s == "" {
		return 0
	}
	if strings.Contains(s, reimbursementMarker) {
		return ReimbursementValue
	}
	clean := strings.ReplaceAll(s, "€", "")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatValue renders a euro amount back into the archive's display format.
func FormatValue(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(whole, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "€ " + b.String() + "," + fracPart
	if neg {
		out = "€ -" + b.String() + "," + fracPart
	}
	return out
}

// FormatTotal sums a list of won tiers into a display total. A total that is
// exactly one reimbursement is labelled as such.
func FormatTotal(tiers []models.PrizeTier) string {
	total := 0.0
	hasReimbursement := false
	for _, t := range tiers {
		total += ParseValue(t.Value)
		if strings.Contains(t.Value, reimbursementMarker) {
			hasReimbursement = true
		}
	}
	switch {
	case total == 0:
		return "€ 0,00"
	case total == ReimbursementValue && hasReimbursement:
		return "€ 1,00 (Reembolso)"
	default:
		return FormatValue(total)
	}
}

// Package games holds the per-game rule sets: wager shape, overlap
// computation, tier tables, accumulation policy and ledger key policy.
// The tables are rule data fixed by each lottery's regulations, not
// configuration; everything that varies per game lives behind Rules so the
// verification pipeline itself is game-agnostic.
package games

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jogossc/boletins-backend/internal/models"
)

// Game ids double as bet-store file stems and API path segments.
const (
	EuroMillions = "euromilhoes"
	Totoloto     = "totoloto"
	EuroDreams   = "eurodreams"
	M1lhao       = "milhao"
)

// ErrMalformedWager is returned by ValidateWager when a wager does not
// respect the game's shape (wrong cardinality, out-of-range or duplicate
// numbers, bad code format). Enforced at the ingestion boundary; the
// verification path still degrades gracefully for bets stored before
// validation existed.
var ErrMalformedWager = errors.New("malformed wager")

// Rules is the capability set of one game.
type Rules interface {
	// ID is the canonical game identifier.
	ID() string
	// ArchiveGlob is the filename pattern of the yearly draw archives.
	ArchiveGlob() string
	// SentinelFile is the "latest draw only" file excluded from archive
	// loading; it is not a durable archive.
	SentinelFile() string
	// YearPattern extracts the 4-digit year from an archive filename.
	YearPattern() *regexp.Regexp
	// Wagers returns the bet's individual wagers, applying any legacy
	// shape fixups the game needs.
	Wagers(b *models.Bet) []models.Wager
	// ValidateWager checks a wager against the game's official shape.
	ValidateWager(w *models.Wager) error
	// Verify checks one wager against one resolved draw and builds the
	// result record, except for the slip echo, resolution method and
	// timestamp, which the orchestrator fills in. A nil result means the
	// wager carries nothing this game can verify (e.g. an empty code).
	Verify(w *models.Wager, d *models.Draw) *models.VerificationResult
	// LedgerKey is the natural key used for history deduplication.
	LedgerKey(r *models.VerificationResult) string
	// DefaultStake is the assumed cost of one simple wager, in euros,
	// used by the statistics aggregator when no override is configured.
	DefaultStake() float64
}

// All returns the four supported games in verification order.
func All() []Rules {
	return []Rules{euroMillionsRules{}, totolotoRules{}, euroDreamsRules{}, m1lhaoRules{}}
}

var displayNames = map[string]string{
	EuroMillions: "Euromilhões",
	Totoloto:     "Totoloto",
	EuroDreams:   "EuroDreams",
	M1lhao:       "M1lhão",
}

// DisplayName returns the user-facing name of a game id.
func DisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return id
}

// Get returns the rule set for a game id.
func Get(id string) (Rules, bool) {
	for _, r := range All() {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// pad2 zero-pads a numeric string to two digits. Comparisons between OCR
// output and archive storage must never be sensitive to leading zeros.
func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func padAll(in []models.FlexString) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, pad2(v.String()))
	}
	return out
}

// overlap counts the set intersection of two number lists. Duplicate inputs
// are collapsed first, so a malformed wager can never match the same drawn
// number twice.
func overlap(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(b))
	n := 0
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

var codeCleaner = regexp.MustCompile(`\s+`)

// NormalizeCode strips embedded whitespace and uppercases an alphanumeric
// prize code ("gqc 37079" → "GQC37079").
func NormalizeCode(code string) string {
	return strings.ToUpper(codeCleaner.ReplaceAllString(code, ""))
}

// splitKey parses a stored winning-combination string of the form
// "13 24 28 33 35 + 5 9" into padded number and special lists.
func splitKey(key string) (numbers, special []string) {
	parts := strings.SplitN(key, "+", 2)
	for _, n := range strings.Fields(parts[0]) {
		numbers = append(numbers, pad2(n))
	}
	if len(parts) > 1 {
		for _, s := range strings.Fields(parts[1]) {
			special = append(special, pad2(s))
		}
	}
	return numbers, special
}

// findTier looks a tier name up in the draw's own payout table. The table is
// authoritative: a match pattern whose tier is absent from the draw wins
// nothing for that contest.
func findTier(d *models.Draw, name string) (models.PrizeTier, bool) {
	for _, t := range d.Prizes {
		if t.Name == name {
			return t, true
		}
	}
	return models.PrizeTier{}, false
}

// checkNumbers validates cardinality, range and uniqueness of a wager's
// main numbers.
func checkNumbers(nums []models.FlexString, count, max int) error {
	if len(nums) != count {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrMalformedWager, count, len(nums))
	}
	seen := make(map[string]struct{}, len(nums))
	for _, n := range nums {
		v := n.Int()
		if v < 1 || v > max {
			return fmt.Errorf("%w: number %q out of range 1-%d", ErrMalformedWager, n.String(), max)
		}
		key := pad2(n.String())
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate number %q", ErrMalformedWager, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func checkRange(v models.FlexString, max int, field string) error {
	n := v.Int()
	if n < 1 || n > max {
		return fmt.Errorf("%w: %s %q out of range 1-%d", ErrMalformedWager, field, v.String(), max)
	}
	return nil
}

// noPrize builds the "Sem prémio" placeholder. anyMatch distinguishes a
// non-winning combination from a blank one in the description.
func noPrize(anyMatch bool) *models.PrizeOutcome {
	desc := "0 acertos"
	if anyMatch {
		desc = "Não corresponde a qualquer prémio"
	}
	return &models.PrizeOutcome{
		Category:    models.NoPrizeCategory,
		Description: desc,
		Value:       "€ 0,00",
	}
}

// applyTiers fills the prize fields of a result from the won tier list:
// Won, Tiers, TotalValue and the flattened Prize field (single tier,
// accumulation summary, or the no-prize placeholder).
func applyTiers(r *models.VerificationResult, tiers []models.PrizeTier, anyMatch bool) {
	if len(tiers) == 0 {
		r.Won = false
		r.Prize = noPrize(anyMatch)
		return
	}
	r.Won = true
	r.Tiers = tiers
	r.TotalValue = FormatTotal(tiers)
	if len(tiers) == 1 {
		t := tiers[0]
		r.Prize = &models.PrizeOutcome{
			Category:    t.Name,
			Description: t.Description,
			Value:       t.Value,
			WinnersPT:   t.WinnersPT.String(),
			WinnersEU:   t.WinnersEU.String(),
		}
		return
	}
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.Name
	}
	r.Prize = &models.PrizeOutcome{
		Category:    strings.Join(names, " + "),
		Description: "Acumulação de prémios",
		Value:       r.TotalValue,
	}
}

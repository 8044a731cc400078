package models

// Resolution methods reported in verification results.
const (
	MethodDateAndContest = "data + concurso"
	MethodDateOnly       = "apenas data"
)

// NoPrizeCategory is the placeholder category for verified wagers that won
// nothing; the frontend keys off the literal string.
const NoPrizeCategory = "Sem prémio"

// VerificationResult is the outcome of checking one wager against one draw.
// It is the unit persisted in both the historical ledger and the per-run
// "recent results" file; downstream consumers (notifications, statistics,
// the web frontend) read this exact shape.
type VerificationResult struct {
	VerifiedAt string        `json:"data_verificacao"` // "2006-01-02 15:04:05"
	Method     string        `json:"metodo_validacao,omitempty"`
	Slip       SlipEcho      `json:"boletim"`
	Wager      WagerEcho     `json:"aposta"`
	Draw       DrawEcho      `json:"sorteio"`
	Matches    *MatchCounts  `json:"acertos,omitempty"` // absent for the code game
	Won        bool          `json:"ganhou"`
	Tiers      []PrizeTier   `json:"premios,omitempty"`
	Prize      *PrizeOutcome `json:"premio,omitempty"`
	TotalValue string        `json:"valor_total,omitempty"`

	// Set only inside notification payloads.
	Game           string `json:"_jogo,omitempty"`
	NotificationID string `json:"_id,omitempty"`
}

// SlipEcho carries the identifying fields of the originating bet.
type SlipEcho struct {
	Reference   string `json:"referencia"`
	DrawDate    string `json:"data_sorteio"`
	ContestID   string `json:"concurso_sorteio,omitempty"`
	SourceImage string `json:"imagem_origem,omitempty"`
}

// WagerEcho carries the wager as verified, with numbers normalized to two
// digits and codes uppercased/stripped.
type WagerEcho struct {
	Index        int      `json:"indice"`
	Numbers      []string `json:"numeros,omitempty"`
	Stars        []string `json:"estrelas,omitempty"`
	LuckyNumber  string   `json:"numero_da_sorte,omitempty"`
	DreamNumber  string   `json:"dream_number,omitempty"`
	Code         string   `json:"codigo,omitempty"`
	CodeOriginal string   `json:"codigo_original,omitempty"`
}

// DrawEcho carries the resolved draw's identity and winning combination.
type DrawEcho struct {
	ContestID    string   `json:"concurso"`
	Date         string   `json:"data"`
	Key          string   `json:"chave,omitempty"`
	Numbers      []string `json:"numeros,omitempty"`
	Stars        []string `json:"estrelas,omitempty"`
	LuckyNumber  string   `json:"numero_da_sorte,omitempty"`
	DreamNumber  string   `json:"dream_number,omitempty"`
	WinningCode  string   `json:"codigo_premiado,omitempty"`
	CodeOriginal string   `json:"codigo_original,omitempty"`
	PrizeName    string   `json:"premio_nome,omitempty"`
	Winners      string   `json:"vencedores,omitempty"`
}

// MatchCounts holds the per-game overlap counts. Exactly one of Stars,
// LuckyNumber or DreamNumber is set, matching the game's special shape.
type MatchCounts struct {
	Numbers     int    `json:"numeros"`
	Stars       *int   `json:"estrelas,omitempty"`
	LuckyNumber *bool  `json:"numero_da_sorte,omitempty"`
	DreamNumber *bool  `json:"dream_number,omitempty"`
	Description string `json:"descricao"`
}

// SpecialHits reduces the special-field overlap to a count, for statistics.
func (m *MatchCounts) SpecialHits() int {
	switch {
	case m == nil:
		return 0
	case m.Stars != nil:
		return *m.Stars
	case m.LuckyNumber != nil && *m.LuckyNumber:
		return 1
	case m.DreamNumber != nil && *m.DreamNumber:
		return 1
	}
	return 0
}

// PrizeOutcome is the flattened prize field kept for frontend compatibility:
// the single won tier, an accumulation summary, or a "Sem prémio" entry.
type PrizeOutcome struct {
	Category    string `json:"categoria"`
	Description string `json:"descricao,omitempty"`
	Value       string `json:"valor"`
	WinnersPT   string `json:"vencedores_pt,omitempty"`
	WinnersEU   string `json:"vencedores_eu,omitempty"`
	Winners     string `json:"vencedores,omitempty"`
}

// RunSummary is the tally reported after one game's verification run.
type RunSummary struct {
	Game         string         `json:"game"`
	Verified     int            `json:"verified"`
	Won          int            `json:"won"`
	Added        int            `json:"added"`
	HistoryTotal int            `json:"history_total"`
	TierCounts   map[string]int `json:"tiers,omitempty"`
}

package models

// PeriodStats accumulates one game's spend/winnings over a month or a year.
type PeriodStats struct {
	TotalWagers   int     `json:"total_apostas"`
	TotalSpent    float64 `json:"total_gasto"`
	TotalWinnings float64 `json:"total_recebido"`
	WinningWagers int     `json:"ganhadoras"`
	NumberHits    int     `json:"acertos_numeros"`
	SpecialHits   int     `json:"acertos_especial"`
	Balance       float64 `json:"saldo"`
	HitPercentage float64 `json:"percentagem_acertos"`
}

// Statistics is the full aggregate written to estatisticas_completas.json.
// Outer maps are keyed by game id, inner maps by "YYYY-MM" (monthly) or
// "YYYY" (annual).
type Statistics struct {
	Monthly   map[string]map[string]*PeriodStats `json:"mensal"`
	Annual    map[string]map[string]*PeriodStats `json:"anual"`
	UpdatedAt string                             `json:"ultima_atualizacao"`
}

// ProcessedImage records one already-extracted upload in the processing
// registry, keyed by image content hash.
type ProcessedImage struct {
	File string `json:"arquivo"`
	Date string `json:"data"`
}

package models

// Draw represents one historical contest as stored in the yearly archive
// files under dados/. Dates are kept in the archive's local textual form
// (DD/MM/YYYY); bets carry ISO dates, so all comparisons normalize one side.
type Draw struct {
	ContestID FlexString   `json:"concurso"`
	Date      string       `json:"data"`
	Key       string       `json:"chave,omitempty"`   // "13 24 28 33 35 + 5 9"
	Numbers   []FlexString `json:"numeros,omitempty"` // Totoloto stores arrays instead of a key string
	Special   FlexString   `json:"especial,omitempty"`
	Code      string       `json:"codigo,omitempty"` // M1lhão winning code, may contain spaces
	PrizeName string       `json:"premio_nome,omitempty"`
	Winners   FlexString   `json:"vencedores,omitempty"`
	Prizes    []PrizeTier  `json:"premios,omitempty"`
}

// PrizeTier is one entry of a draw's own payout table. Tier names are the
// only linkage between a computed match and a payout; values are kept as the
// scraped display strings ("€ 1.234,56", "Reembolso do valor da aposta").
type PrizeTier struct {
	Name        string     `json:"premio"`
	Description string     `json:"descricao,omitempty"`
	Value       string     `json:"valor"`
	WinnersPT   FlexString `json:"vencedores_pt,omitempty"`
	WinnersEU   FlexString `json:"vencedores_eu,omitempty"`
	Winners     FlexString `json:"vencedores,omitempty"`
}

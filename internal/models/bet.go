package models

// Bet represents one processed betting slip for one game, as stored in the
// per-game bet file (apostas/<game>.json). Field tags follow the interchange
// format produced by the OCR extraction step; they are the on-disk contract
// and must not change.
type Bet struct {
	GameType    string       `json:"tipo,omitempty"`
	Reference   string       `json:"referencia_unica"`
	DrawDate    string       `json:"data_sorteio"`          // ISO (YYYY-MM-DD)
	ContestID   FlexString   `json:"numero_sorteio,omitempty"`
	Contest     FlexString   `json:"concurso,omitempty"`
	BetDate     string       `json:"data_aposta,omitempty"`
	IssuedAt    string       `json:"data_emissao,omitempty"`
	BetType     string       `json:"tipo_aposta,omitempty"` // "Simples" / "Multipla"
	TotalStake  string       `json:"valor_total,omitempty"`
	Agent       string       `json:"mediador,omitempty"`
	Valid       *bool        `json:"valido,omitempty"`
	Code        string       `json:"codigo,omitempty"` // legacy top-level M1lhão code
	SourceImage string       `json:"imagem_origem,omitempty"`
	ImageHash   string       `json:"hash_imagem,omitempty"`
	ProcessedAt string       `json:"data_processamento,omitempty"`
	Wagers      []Wager      `json:"apostas"`
}

// ContestRef returns the contest id recorded on the slip, if any. Older
// extractions stored it under "concurso", newer ones under "numero_sorteio".
func (b *Bet) ContestRef() string {
	if b.Contest != "" {
		return b.Contest.String()
	}
	return b.ContestID.String()
}

// Wager is one individual combination inside a bet. Only the fields of the
// owning game are populated: numbers plus stars (Euromilhões), numbers plus
// lucky number (Totoloto), numbers plus dream number (EuroDreams), or just a
// code (M1lhão).
type Wager struct {
	Index       int          `json:"indice"`
	Numbers     []FlexString `json:"numeros,omitempty"`
	Stars       []FlexString `json:"estrelas,omitempty"`
	LuckyNumber FlexString   `json:"numero_da_sorte,omitempty"`
	DreamNumber FlexString   `json:"numero_dream,omitempty"`
	Dream       FlexString   `json:"dream_number,omitempty"`
	Code        string       `json:"codigo,omitempty"`
}

// DreamRef returns the dream number whichever tag it was stored under.
func (w *Wager) DreamRef() string {
	if w.Dream != "" {
		return w.Dream.String()
	}
	return w.DreamNumber.String()
}

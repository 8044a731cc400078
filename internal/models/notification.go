package models

// Notification is one entry of the active notification list consumed by the
// web frontend. IDs are stable per (game, reference, wager index) so a slip
// never re-notifies on later runs; read state is flipped by the frontend and
// moved to the history file on acknowledgement.
type Notification struct {
	ID       string              `json:"id"`
	Game     string              `json:"jogo"`
	Date     string              `json:"data"`
	Read     bool                `json:"lido"`
	Title    string              `json:"titulo"`
	Subtitle string              `json:"subtitulo"`
	Summary  string              `json:"resumo"`
	Details  *VerificationResult `json:"detalhes,omitempty"`
}

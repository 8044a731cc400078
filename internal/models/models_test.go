package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringDecoding(t *testing.T) {
	var payload struct {
		Contest FlexString   `json:"concurso"`
		Numbers []FlexString `json:"numeros"`
		Special FlexString   `json:"especial"`
	}
	err := json.Unmarshal([]byte(`{"concurso": 8, "numeros": ["3", 17, "22"], "especial": null}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "8", payload.Contest.String())
	assert.Equal(t, []FlexString{"3", "17", "22"}, payload.Numbers)
	assert.Equal(t, "", payload.Special.String())
}

func TestFlexStringInt(t *testing.T) {
	assert.Equal(t, 8, FlexString("8").Int())
	assert.Equal(t, 0, FlexString("").Int())
	assert.Equal(t, 0, FlexString("n/d").Int())
}

func TestBetContestRefPrefersLegacyTag(t *testing.T) {
	b := &Bet{Contest: "021/2026", ContestID: "99/2026"}
	assert.Equal(t, "021/2026", b.ContestRef())

	b = &Bet{ContestID: "99/2026"}
	assert.Equal(t, "99/2026", b.ContestRef())

	assert.Equal(t, "", (&Bet{}).ContestRef())
}

func TestWagerDreamRef(t *testing.T) {
	w := &Wager{Dream: "3", DreamNumber: "4"}
	assert.Equal(t, "3", w.DreamRef())

	w = &Wager{DreamNumber: "4"}
	assert.Equal(t, "4", w.DreamRef())
}

func TestMatchCountsSpecialHits(t *testing.T) {
	two := 2
	hit := true
	miss := false

	assert.Equal(t, 0, (*MatchCounts)(nil).SpecialHits())
	assert.Equal(t, 2, (&MatchCounts{Stars: &two}).SpecialHits())
	assert.Equal(t, 1, (&MatchCounts{LuckyNumber: &hit}).SpecialHits())
	assert.Equal(t, 0, (&MatchCounts{LuckyNumber: &miss}).SpecialHits())
	assert.Equal(t, 1, (&MatchCounts{DreamNumber: &hit}).SpecialHits())
}

// The interchange tags are the on-disk contract with the frontend and with
// previously written data files.
func TestVerificationResultInterchangeTags(t *testing.T) {
	stars := 2
	r := &VerificationResult{
		VerifiedAt: "2026-02-24 22:00:00",
		Method:     MethodDateAndContest,
		Slip:       SlipEcho{Reference: "REF-1", DrawDate: "2026-02-24"},
		Wager:      WagerEcho{Index: 1, Numbers: []string{"13"}},
		Draw:       DrawEcho{ContestID: "021/2026", Date: "24/02/2026"},
		Matches:    &MatchCounts{Numbers: 1, Stars: &stars, Description: "1 número(s) e 2 estrela(s)"},
		Won:        true,
		TotalValue: "€ 54,12",
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"data_verificacao", "metodo_validacao", "boletim", "aposta", "sorteio", "acertos", "ganhou", "valor_total"} {
		assert.Contains(t, decoded, key)
	}
	slip := decoded["boletim"].(map[string]any)
	assert.Equal(t, "REF-1", slip["referencia"])
}

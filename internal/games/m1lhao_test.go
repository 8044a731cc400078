package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jogossc/boletins-backend/internal/models"
)

func m1lhaoDraw() *models.Draw {
	return &models.Draw{
		ContestID: "021/2026",
		Date:      "27/02/2026",
		Code:      "GQC 37079",
	}
}

func TestM1lhaoVerify(t *testing.T) {
	rules := m1lhaoRules{}

	t.Run("winning code normalizes before comparing", func(t *testing.T) {
		res := rules.Verify(&models.Wager{Index: 1, Code: "gqc 37079"}, m1lhaoDraw())
		require.NotNil(t, res)
		require.True(t, res.Won)
		assert.Equal(t, "GQC37079", res.Wager.Code)
		assert.Equal(t, "gqc 37079", res.Wager.CodeOriginal)
		assert.Equal(t, "1.º Prémio", res.Prize.Category)
		assert.Equal(t, "€ 1.000.000,00", res.TotalValue)
		assert.Equal(t, "1", res.Draw.Winners)
		assert.Nil(t, res.Matches)
	})

	t.Run("losing code", func(t *testing.T) {
		res := rules.Verify(&models.Wager{Index: 1, Code: "ABC12345"}, m1lhaoDraw())
		require.NotNil(t, res)
		assert.False(t, res.Won)
		assert.Equal(t, models.NoPrizeCategory, res.Prize.Category)
		assert.Equal(t, "Código não premiado", res.Prize.Description)
	})

	t.Run("empty code yields no result", func(t *testing.T) {
		assert.Nil(t, rules.Verify(&models.Wager{Index: 1}, m1lhaoDraw()))
	})

	t.Run("draw prize metadata overrides defaults", func(t *testing.T) {
		d := m1lhaoDraw()
		d.PrizeName = "Prémio Especial"
		d.Winners = "2"
		res := rules.Verify(&models.Wager{Index: 1, Code: "GQC37079"}, d)
		require.True(t, res.Won)
		assert.Equal(t, "Prémio Especial", res.Prize.Category)
		assert.Equal(t, "2", res.Draw.Winners)
	})
}

// Older bet files carry the code on the bet itself instead of inside an
// apostas entry; Wagers materializes a single virtual wager for them.
func TestM1lhaoLegacyCodeFallback(t *testing.T) {
	rules := m1lhaoRules{}

	legacy := &models.Bet{Reference: "REF-1", Code: "GQC37079"}
	wagers := rules.Wagers(legacy)
	require.Len(t, wagers, 1)
	assert.Equal(t, 1, wagers[0].Index)
	assert.Equal(t, "GQC37079", wagers[0].Code)

	modern := &models.Bet{
		Reference: "REF-2",
		Wagers:    []models.Wager{{Index: 1, Code: "AAA11111"}, {Index: 2, Code: "BBB22222"}},
	}
	assert.Len(t, rules.Wagers(modern), 2)

	// Legacy fallback does not kick in when apostas are present.
	both := &models.Bet{Reference: "REF-3", Code: "ZZZ99999",
		Wagers: []models.Wager{{Index: 1, Code: "AAA11111"}}}
	wagers = rules.Wagers(both)
	require.Len(t, wagers, 1)
	assert.Equal(t, "AAA11111", wagers[0].Code)
}

func TestM1lhaoValidateWager(t *testing.T) {
	rules := m1lhaoRules{}

	assert.NoError(t, rules.ValidateWager(&models.Wager{Code: "GQC37079"}))
	assert.NoError(t, rules.ValidateWager(&models.Wager{Code: "gqc 37079"}))

	for _, code := range []string{"", "GQC3707", "GQC370790", "1234567", "GQCD3707"} {
		assert.ErrorIs(t, rules.ValidateWager(&models.Wager{Code: code}), ErrMalformedWager, code)
	}
}

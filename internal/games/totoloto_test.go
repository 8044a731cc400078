package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jogossc/boletins-backend/internal/models"
)

func totolotoDraw() *models.Draw {
	return &models.Draw{
		ContestID: "008/2026",
		Date:      "25/02/2026",
		Numbers:   []models.FlexString{"3", "17", "22", "38", "44"},
		Special:   "7",
		Prizes: []models.PrizeTier{
			{Name: "1.º Prémio", Value: "€ 2.500.000,00"},
			{Name: "2.º Prémio", Value: "€ 15.000,00"},
			{Name: "3.º Prémio", Value: "€ 120,00"},
			{Name: "4.º Prémio", Value: "€ 10,50"},
			{Name: "5.º Prémio", Value: "€ 2,10"},
			{Name: "Nº da Sorte", Value: "Reembolso"},
		},
	}
}

func totolotoWager(nums []models.FlexString, lucky models.FlexString) *models.Wager {
	return &models.Wager{Index: 1, Numbers: nums, LuckyNumber: lucky}
}

func TestTotolotoVerify(t *testing.T) {
	rules := totolotoRules{}

	t.Run("numbers tier only", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"3", "17", "22", "1", "2"}, "9"), totolotoDraw())
		require.True(t, res.Won)
		require.Len(t, res.Tiers, 1)
		assert.Equal(t, "4.º Prémio", res.Prize.Category)
		assert.Equal(t, "€ 10,50", res.TotalValue)
		require.NotNil(t, res.Matches.LuckyNumber)
		assert.False(t, *res.Matches.LuckyNumber)
	})

	t.Run("lucky number alone earns reimbursement", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"1", "2", "4", "5", "6"}, "7"), totolotoDraw())
		require.True(t, res.Won)
		require.Len(t, res.Tiers, 1)
		assert.Equal(t, "Nº da Sorte", res.Prize.Category)
		assert.Equal(t, "€ 1,00 (Reembolso)", res.TotalValue)
	})

	t.Run("lucky number accumulates with numbers tier", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"3", "17", "1", "2", "4"}, "7"), totolotoDraw())
		require.True(t, res.Won)
		require.Len(t, res.Tiers, 2)
		assert.Equal(t, "Nº da Sorte + 5.º Prémio", res.Prize.Category)
		assert.Equal(t, "€ 3,10", res.TotalValue)
	})

	t.Run("five numbers without lucky is second tier", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"3", "17", "22", "38", "44"}, "9"), totolotoDraw())
		require.True(t, res.Won)
		require.Len(t, res.Tiers, 1)
		assert.Equal(t, "2.º Prémio", res.Prize.Category)
	})

	t.Run("five numbers plus lucky promotes to top tier", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"3", "17", "22", "38", "44"}, "7"), totolotoDraw())
		require.True(t, res.Won)
		require.Len(t, res.Tiers, 2)
		// Reimbursement tier survives, 2.º Prémio is replaced by the top
		// tier so its value is not double counted.
		names := []string{res.Tiers[0].Name, res.Tiers[1].Name}
		assert.Contains(t, names, "Nº da Sorte")
		assert.Contains(t, names, "1.º Prémio")
		assert.NotContains(t, names, "2.º Prémio")
		assert.Equal(t, "€ 2.500.001,00", res.TotalValue)
	})

	t.Run("one number wins nothing", func(t *testing.T) {
		res := rules.Verify(totolotoWager([]models.FlexString{"3", "1", "2", "4", "5"}, "9"), totolotoDraw())
		assert.False(t, res.Won)
		assert.Equal(t, models.NoPrizeCategory, res.Prize.Category)
		assert.Equal(t, "Não corresponde a qualquer prémio", res.Prize.Description)
	})
}

func TestTotolotoValidateWager(t *testing.T) {
	rules := totolotoRules{}

	assert.NoError(t, rules.ValidateWager(totolotoWager(
		[]models.FlexString{"3", "17", "22", "38", "44"}, "13")))

	assert.ErrorIs(t, rules.ValidateWager(totolotoWager(
		[]models.FlexString{"3", "17", "22", "38", "50"}, "7")), ErrMalformedWager)
	assert.ErrorIs(t, rules.ValidateWager(totolotoWager(
		[]models.FlexString{"3", "17", "22", "38", "44"}, "14")), ErrMalformedWager)
	assert.ErrorIs(t, rules.ValidateWager(totolotoWager(
		[]models.FlexString{"3", "17", "22", "38", "44"}, "")), ErrMalformedWager)
}

// The totoloto ledger key includes the verification timestamp, so two runs
// of the same wager produce distinct history entries.
func TestTotolotoLedgerKeyIncludesTimestamp(t *testing.T) {
	rules := totolotoRules{}
	r := &models.VerificationResult{
		VerifiedAt: "2026-02-25 22:00:00",
		Slip:       models.SlipEcho{Reference: "REF-1"},
		Wager:      models.WagerEcho{Index: 1},
	}
	assert.Equal(t, "REF-1|1|2026-02-25 22:00:00", rules.LedgerKey(r))

	r2 := *r
	r2.VerifiedAt = "2026-02-26 22:00:00"
	assert.NotEqual(t, rules.LedgerKey(r), rules.LedgerKey(&r2))
}

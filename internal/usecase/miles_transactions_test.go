package usecase

import (
	"testing"

	"travel-ledger-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeEarning(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Citi AAdvantage Platinum Select", "credit_card"},
		{"Barclays Aviator purchases", "credit_card"},
		{"Elite status bonus", "bonus"},
		{"Spring promo 2024", "promotion"},
		{"Hyatt Regency DFW", "partner_hotel"},
		{"Hertz rental", "partner_car"},
		{"AAdvantage eShopping", "partner_shopping"},
		{"Million Miler award", "million_miler"},
		{"Points transfer", "transfer"},
		{"Survey reward", "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeEarning(tt.description), tt.description)
	}
}

func TestCategorizeRedemption(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Upgrade DFW-LHR", "upgrade"},
		{"Award ticket JFK-NRT", "award_flight"},
		{"Hotel redemption", "hotel"},
		{"Car rental", "car"},
		{"Miles expired", "expiration"},
		{"Magazine subscription", "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeRedemption(tt.description), tt.description)
	}
}

func TestNormalizeMilesTransactions(t *testing.T) {
	txs := NormalizeMilesTransactions(
		[]entity.PartnerActivity{
			{ActivityDate: "2024-02-01", Description: "Citi card", BaseMiles: 1500, BonusMiles: 500, EQD: 100},
			{PostedDate: "2023-12-15", Description: "Hertz", BaseMiles: 300},
		},
		[]entity.Redemption{
			{Date: "2024-01-10", Description: "Award ticket", MilesRedeemed: 25000},
		},
	)

	require.Len(t, txs, 3)
	assert.Equal(t, "2023-12-15", txs[0].Date)
	assert.Equal(t, "partner_car", txs[0].Category)

	assert.Equal(t, entity.MilesRedemption, txs[1].Type)
	assert.Equal(t, -25000, txs[1].TotalMiles)
	assert.Equal(t, "award_flight", txs[1].Category)

	assert.Equal(t, entity.MilesEarning, txs[2].Type)
	assert.Equal(t, 2000, txs[2].TotalMiles)
	assert.Equal(t, 100.0, txs[2].EQD)
}

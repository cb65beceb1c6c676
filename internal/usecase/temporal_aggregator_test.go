package usecase

import (
	"testing"

	"travel-ledger-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	intl := flight("2023-06-05", "JFK", "LHR", 3451)
	intl.International = true
	intl.OriginCountry, intl.DestinationCountry = "US", "GB"
	intl.EQM, intl.EQD, intl.BaseMiles, intl.BonusMiles = 3451, 900, 3000, 1000

	upgraded := flight("2024-06-03", "DFW", "ORD", 802)
	upgraded.Upgraded = true
	upgraded.EQM = 802

	ledger := []entity.FlightRecord{
		intl,
		flight("2024-01-01", "DFW", "LAX", 1235),
		upgraded,
		flight("2024-06-04", "ORD", "DFW", 802),
		flight("not-a-date", "DFW", "ORD", 802),
	}
	miles := []entity.MilesTransaction{
		{Date: "2022-11-01", Type: entity.MilesEarning, TotalMiles: 5000},
		{Date: "2024-02-01", Type: entity.MilesRedemption, TotalMiles: -12500},
	}

	stats := Aggregate(ledger, miles)

	require.Len(t, stats.Annual, 3)
	assert.Equal(t, "2022", stats.Annual[0].Year)
	assert.Equal(t, 0, stats.Annual[0].Flights)
	assert.Equal(t, 5000, stats.Annual[0].MilesEarnedPartner)
	assert.Equal(t, 5000, stats.Annual[0].EarnedMiles)

	y2023 := stats.Annual[1]
	assert.Equal(t, 1, y2023.Flights)
	assert.Equal(t, 1, y2023.International)
	assert.Equal(t, 4000, y2023.EarnedMiles)
	assert.Equal(t, 2, y2023.UniqueCountries)

	y2024 := stats.Annual[2]
	assert.Equal(t, 3, y2024.Flights)
	assert.Equal(t, 2839, y2024.DistanceMiles)
	assert.Equal(t, 1, y2024.Upgrades)
	assert.Equal(t, 3, y2024.Domestic)
	assert.Equal(t, 12500, y2024.MilesRedeemed)
	assert.Equal(t, 3, y2024.UniqueAirports)

	require.Len(t, stats.YearOverYear, 2)
	first := stats.YearOverYear[0]
	assert.Equal(t, "2023", first.Year)
	assert.Nil(t, first.Flights.PercentChange, "previous year had no flights")
	require.NotNil(t, first.EarnedMiles.PercentChange)
	assert.Equal(t, -20.0, *first.EarnedMiles.PercentChange)

	second := stats.YearOverYear[1]
	require.NotNil(t, second.Flights.PercentChange)
	assert.Equal(t, 200.0, *second.Flights.PercentChange)
	assert.Equal(t, 2.0, second.Flights.Change)

	assert.Equal(t, "2024", stats.BusiestYear)
	assert.Equal(t, "2023", stats.QuietestYear)
	assert.Equal(t, "Jun", stats.BusiestMonth)

	require.Len(t, stats.Monthly, 3)
	assert.Equal(t, "2023-06", stats.Monthly[0].Period)
	assert.Equal(t, 2, stats.Monthly[2].Flights)

	assert.Len(t, stats.ByCalendarMonth, 12)
	assert.Equal(t, 1, stats.ByQuarter[0].Flights)
	assert.Equal(t, 3, stats.ByQuarter[1].Flights)
	// 2023-06-05, 2024-01-01 and 2024-06-03 are Mondays
	assert.Equal(t, 3, stats.ByDayOfWeek[0].Flights)
	assert.Equal(t, "Mon", stats.BusiestDayOfWeek)
}

func TestAggregateBusiestTieGoesToFirstYear(t *testing.T) {
	stats := Aggregate([]entity.FlightRecord{
		flight("2021-03-01", "DFW", "ORD", 802),
		flight("2022-03-01", "DFW", "ORD", 802),
		flight("2023-03-01", "DFW", "ORD", 802),
	}, nil)

	assert.Equal(t, "2021", stats.BusiestYear)
	assert.Equal(t, "2021", stats.QuietestYear)
	require.Len(t, stats.YearOverYear, 2)
	require.NotNil(t, stats.YearOverYear[0].Flights.PercentChange)
	assert.Equal(t, 0.0, *stats.YearOverYear[0].Flights.PercentChange)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, nil)
	assert.Empty(t, stats.Annual)
	assert.Empty(t, stats.YearOverYear)
	assert.Equal(t, "", stats.BusiestYear)
	assert.Len(t, stats.ByDayOfWeek, 7)
	for _, d := range stats.ByDayOfWeek {
		assert.Zero(t, d.Flights)
	}
}

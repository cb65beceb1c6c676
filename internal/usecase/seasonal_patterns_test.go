package usecase

import (
	"fmt"
	"testing"

	"travel-ledger-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSeasonalPatterns(t *testing.T) {
	var ledger []entity.FlightRecord
	for y := 2021; y <= 2023; y++ {
		// December holidays DFW to ORD and back, every year
		ledger = append(ledger,
			flight(fmt.Sprintf("%d-12-20", y), "DFW", "ORD", 802),
			flight(fmt.Sprintf("%d-12-27", y), "ORD", "DFW", 802),
			flight(fmt.Sprintf("%d-12-28", y), "DFW", "LAX", 1235),
		)
		for m := 1; m <= 11; m++ {
			ledger = append(ledger, flight(fmt.Sprintf("%d-%02d-10", y, m), "DFW", "JFK", 1391))
		}
	}
	// JFK-LHR in July only twice
	ledger = append(ledger, flight("2021-07-01", "JFK", "LHR", 3451), flight("2022-07-01", "LHR", "JFK", 3451))

	result := DetectSeasonalPatterns(ledger)

	assert.False(t, result.Insufficient)
	assert.Equal(t, 3, result.YearsObserved)
	require.Len(t, result.MonthlyAverageFlights, 12)
	assert.Equal(t, 3.0, result.MonthlyAverageFlights[11].AvgFlights)

	require.True(t, result.HasPeak)
	assert.Equal(t, "Dec", result.PeakMonths[0].Month)
	assert.Len(t, result.PeakMonths, 2)
	assert.Empty(t, result.LowMonths)

	require.True(t, result.HasRecurring)
	for _, p := range result.RecurringPatterns {
		assert.GreaterOrEqual(t, p.YearsAppeared, 3)
		assert.NotEqual(t, "JFK-LHR", p.Route)
	}
	require.NotNil(t, result.TopRecurring)
	assert.Equal(t, "Jan", result.TopRecurring.Month)
	assert.Equal(t, "DFW-JFK", result.TopRecurring.Route)
	assert.Equal(t, []string{"2021", "2022", "2023"}, result.TopRecurring.Years)
	assert.Len(t, result.RecurringPatterns, 10)

	assert.Equal(t, 9, result.QuarterDistribution[0].Flights)
}

func TestDetectSeasonalPatternsUndirectedRoutes(t *testing.T) {
	ledger := []entity.FlightRecord{
		flight("2020-04-01", "DFW", "ORD", 802),
		flight("2021-04-01", "ORD", "DFW", 802),
		flight("2022-04-03", "DFW", "ORD", 802),
	}

	result := DetectSeasonalPatterns(ledger)
	require.Len(t, result.RecurringPatterns, 1)
	assert.Equal(t, "DFW-ORD", result.RecurringPatterns[0].Route)
	assert.Equal(t, "Apr", result.RecurringPatterns[0].Month)
	assert.Len(t, result.LowMonths, 11)
}

func TestDetectSeasonalPatternsEmpty(t *testing.T) {
	result := DetectSeasonalPatterns(nil)
	assert.True(t, result.Insufficient)
	assert.False(t, result.HasPeak)
	assert.Nil(t, result.TopRecurring)
	assert.Len(t, result.QuarterDistribution, 4)
}

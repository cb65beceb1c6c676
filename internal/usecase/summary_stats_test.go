package usecase

import (
	"testing"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeLedger() []entity.FlightRecord {
	ledger := []entity.FlightRecord{
		flight("2023-01-01", "DFW", "ORD", 802),
		flight("2023-01-05", "ORD", "DFW", 802),
		flight("2023-02-01", "JFK", "LHR", 3451),
		flight("2023-02-10", "LHR", "JFK", 3451),
		flight("2023-03-01", "XNA", "DFW", 0),
	}
	ledger[2].International, ledger[3].International = true, true
	ledger[2].DestinationCountry = "GB"
	return ledger
}

func TestCalculateRouteStats(t *testing.T) {
	stats := CalculateRouteStats(routeLedger(), config.DefaultHubAirports)

	require.Len(t, stats.TopCityPairs, 3)
	assert.Equal(t, entity.RouteCount{Route: "DFW-ORD", Count: 2}, stats.TopCityPairs[0])
	assert.Equal(t, entity.RouteCount{Route: "JFK-LHR", Count: 2}, stats.TopCityPairs[1])
	require.NotNil(t, stats.MostFrequentRoute)
	assert.Equal(t, "DFW-ORD", stats.MostFrequentRoute.Route)

	assert.Equal(t, entity.DirectionalRoute{Origin: "DFW", Destination: "ORD", Count: 1}, stats.TopDirectionalRoutes[0])
	assert.Equal(t, entity.AirportCount{Airport: "DFW", Count: 3}, stats.MostVisitedAirports[0])

	assert.Equal(t, 5, stats.HubUsage.TotalHubFlights)
	assert.Equal(t, 100.0, stats.HubUsage.HubPercentage)
	assert.Equal(t, map[string]int{"DFW": 3, "ORD": 2, "JFK": 2}, stats.HubUsage.ByHub)

	assert.Equal(t, 2127, stats.DistanceStats.Average)
	assert.Equal(t, 3451, stats.DistanceStats.Median)
	assert.Equal(t, &entity.FlightRef{Route: "JFK-LHR", DistanceMiles: 3451, Date: "2023-02-01"}, stats.DistanceStats.Longest)
	assert.Equal(t, &entity.FlightRef{Route: "DFW-ORD", DistanceMiles: 802, Date: "2023-01-01"}, stats.DistanceStats.Shortest)
}

func TestCalculateRouteStatsEmpty(t *testing.T) {
	stats := CalculateRouteStats(nil, []string{"DFW"})

	assert.Empty(t, stats.TopCityPairs)
	assert.Nil(t, stats.MostFrequentRoute)
	assert.Nil(t, stats.DistanceStats.Longest)
	assert.Zero(t, stats.HubUsage.HubPercentage)
}

func TestCalculateLifetimeStats(t *testing.T) {
	ledger := routeLedger()
	ledger[0].MarketingFlight, ledger[0].OperatingFlight = "AA2301", "AA2301"
	ledger[2].MarketingFlight, ledger[2].OperatingFlight = "AA6142", "BA114"
	ledger[2].CabinFlown, ledger[2].Upgraded = entity.CabinBusiness, true
	ledger[0].BaseMiles, ledger[0].BonusMiles = 1000, 500
	ledger[4].DataQuality = entity.QualityPartial
	ledger = append(ledger, flight("not-a-date", "DFW", "LAX", 1235))

	miles := []entity.MilesTransaction{
		{Type: entity.MilesEarning, TotalMiles: 2000},
		{Type: entity.MilesRedemption, TotalMiles: -25000},
	}
	profile := &entity.Profile{StatusTier: "Platinum"}

	stats := CalculateLifetimeStats(ledger, miles, []entity.LoungeVisit{{}, {}}, profile)

	assert.Equal(t, 5, stats.TotalFlights)
	assert.Equal(t, 8506, stats.TotalDistanceMiles)
	assert.Equal(t, []string{"DFW", "JFK", "LHR", "ORD", "XNA"}, stats.Airports)
	assert.Equal(t, []string{"GB"}, stats.Countries)
	assert.Equal(t, []string{"AA", "BA"}, stats.Airlines)
	assert.Equal(t, 2, stats.InternationalFlights)
	assert.Equal(t, 3, stats.DomesticFlights)
	assert.Equal(t, 0.4, stats.InternationalRatio)
	assert.Equal(t, 1500, stats.MilesEarnedFromFlights)
	assert.Equal(t, 2000, stats.MilesEarnedFromPartners)
	assert.Equal(t, 3500, stats.TotalMilesEarned)
	assert.Equal(t, 25000, stats.MilesRedeemed)
	assert.Equal(t, map[string]int{"Y": 4, "C": 1}, stats.CabinDistribution)
	assert.Equal(t, 1, stats.UpgradesReceived)
	assert.Equal(t, 0.2, stats.UpgradeRate)
	assert.Equal(t, 2, stats.LoungeVisits)
	assert.Equal(t, "Platinum", stats.CurrentStatus)
	assert.Equal(t, "0", stats.MillionMilerLevel)
	assert.Equal(t, 1701, stats.AverageFlightDistance)
	assert.Equal(t, entity.DataQualityBreakdown{FullRecords: 4, PartialRecords: 1, FullPercentage: 80}, stats.DataQuality)
}

func TestCalculatePartnerStats(t *testing.T) {
	ledger := routeLedger()
	ledger[0].MarketingFlight, ledger[0].OperatingFlight = "AA2301", "AA2301"
	ledger[1].MarketingFlight, ledger[1].OperatingFlight = "AA2302", "AA2302"
	ledger[2].MarketingFlight, ledger[2].OperatingFlight = "AA6142", "BA114"

	stats := CalculatePartnerStats(ledger)

	assert.Equal(t, []entity.CarrierCount{{Airline: "AA", Flights: 3}}, stats.ByMarketingCarrier)
	assert.Equal(t, []entity.CarrierCount{{Airline: "AA", Flights: 2}, {Airline: "BA", Flights: 1}}, stats.ByOperatingCarrier)
	assert.Equal(t, 1, stats.CodeshareFlights)
	assert.Equal(t, 0.2, stats.CodeshareRate)
}

func TestCalculateMilestones(t *testing.T) {
	ledger := []entity.FlightRecord{
		flight("2015-03-01", "DFW", "ORD", 5000),
		flight("2015-06-01", "ORD", "LHR", 60000),
		flight("2016-01-01", "LHR", "CDG", 100),
	}
	ledger[1].International, ledger[1].DestinationCountry = true, "GB"
	ledger[2].CabinFlown = entity.CabinFirst

	m := CalculateMilestones(ledger)

	assert.Equal(t, &entity.MilestoneFlight{Route: "DFW-ORD", Date: "2015-03-01"}, m.FirstFlight)
	assert.Equal(t, &entity.MilestoneFlight{Route: "ORD-LHR", Date: "2015-06-01", DestinationCountry: "GB"}, m.FirstInternational)
	assert.Equal(t, &entity.MilestoneFlight{Route: "LHR-CDG", Date: "2016-01-01", Cabin: "F"}, m.FirstPremiumCabin)

	require.Len(t, m.DistanceMilestones, 3)
	for i, miles := range []int{10000, 25000, 50000} {
		assert.Equal(t, miles, m.DistanceMilestones[i].Miles)
		assert.Equal(t, "ORD-LHR", m.DistanceMilestones[i].Flight)
	}

	assert.Equal(t, 4, m.TotalAirports)
	assert.Equal(t, entity.NewAirport{Airport: "CDG", Date: "2016-01-01", Number: 4}, m.NewAirportsTimeline[3])
}

func TestCalculateMilestonesKeepsLastTenAirports(t *testing.T) {
	codes := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ", "KKK", "LLL"}
	var ledger []entity.FlightRecord
	for i := 0; i+1 < len(codes); i += 2 {
		ledger = append(ledger, flight("2020-01-01", codes[i], codes[i+1], 100))
	}

	m := CalculateMilestones(ledger)

	assert.Equal(t, 12, m.TotalAirports)
	require.Len(t, m.NewAirportsTimeline, 10)
	assert.Equal(t, "CCC", m.NewAirportsTimeline[0].Airport)
	assert.Equal(t, 3, m.NewAirportsTimeline[0].Number)
}

func TestCalculateMilestonesEmpty(t *testing.T) {
	m := CalculateMilestones(nil)

	assert.Nil(t, m.FirstFlight)
	assert.Empty(t, m.DistanceMilestones)
	assert.Empty(t, m.NewAirportsTimeline)
}

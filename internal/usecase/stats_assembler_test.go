package usecase

import (
	"context"
	"testing"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

func newTestAssembler() *StatsAssembler {
	log := logger.NewNopLogger()
	return NewStatsAssembler(
		NewMergeEngine(testDirectory(), log),
		NewPatternEngine(4, log),
		AssemblerOptions{Version: "test", Hubs: []string{"DFW", "JFK"}, Clock: fixedClock},
		log,
	)
}

func sampleHistory() *entity.TravelHistory {
	return &entity.TravelHistory{
		ExportID: "export-1",
		Segments: []entity.RawFlightSegment{
			{PNR: "ABCDEF", BookingDate: "2023-12-01", DepartureDate: "2024-01-01", DepartureTime: "08:00", Origin: "JFK", Destination: "LHR", MarketingFlight: "AA100", BookingClass: "Y", CabinCode: "Y"},
			{PNR: "ABCDEF", BookingDate: "2023-12-01", DepartureDate: "2024-01-01", DepartureTime: "21:00", Origin: "LHR", Destination: "CDG", MarketingFlight: "BA304", BookingClass: "Y", CabinCode: "Y"},
			{PNR: "GHIJKL", DepartureDate: "2022-06-01", Origin: "DFW", Destination: "ORD", MarketingFlight: "AA2301", Canceled: true},
		},
		FlightActivity: []entity.RawMilesActivity{
			{DepartureDate: "2024-01-01", Origin: "JFK", Destination: "LHR", Airline: "AA", FlightNumber: "100", FareClass: "Y", EQM: 3451, EQD: 900, BaseMiles: 3451},
			{DepartureDate: "2022-05-01", Origin: "DFW", Destination: "ZZZ", Airline: "AA", FlightNumber: "1", FareClass: "M", EQM: 500},
		},
		PartnerActivity: []entity.PartnerActivity{{ActivityDate: "2024-02-01", Description: "CITI CARD", BaseMiles: 1000}},
		Redemptions:     []entity.Redemption{{Date: "2024-03-01", Description: "AWARD TICKET", MilesRedeemed: 25000}},
		LoungeVisits:    []entity.LoungeVisit{{LocationCode: "JFK-8", LoungeType: "Admirals Club", Timestamp: "2024-01-01 06:00", Guests: 1}},
		SWUCertificates: []entity.SWUCertificate{{Earned: 4, Used: 2}},
		Profile:         &entity.Profile{StatusTier: "Gold"},
	}
}

func TestAssembleComposesReport(t *testing.T) {
	report, err := newTestAssembler().Assemble(context.Background(), sampleHistory())
	require.NoError(t, err)

	meta := report.Metadata
	assert.Equal(t, "export-1", meta.ExportID)
	assert.Equal(t, "test", meta.Version)
	assert.Equal(t, fixedClock(), meta.GeneratedAt)
	assert.Equal(t, 3, meta.FlightCount)
	assert.Equal(t, "2022-05-01", meta.FirstDate)
	assert.Equal(t, "2024-01-01", meta.LastDate)
	assert.Equal(t, 3, meta.YearsSpan)
	assert.Len(t, meta.LedgerFingerprint, 64)
	assert.Equal(t, entity.MergeStats{Both: 1, PNROnly: 1, ActivityOnly: 1, SkippedCanceled: 1}, meta.Merge)

	require.Len(t, report.Trips, 1)
	assert.Equal(t, "LHR", report.Trips[0].Via[0])
	assert.Len(t, report.Miles, 2)
	assert.Equal(t, 1, report.Lounges.TotalVisits)
	assert.Equal(t, 2, report.Loyalty.SWU.TotalUsed)
	assert.Equal(t, 25000, report.Lifetime.MilesRedeemed)
	assert.Equal(t, "Gold", report.Lifetime.CurrentStatus)

	var kinds []entity.AnnotationKind
	for _, a := range report.Annotations {
		kinds = append(kinds, a.Kind)
	}
	assert.Contains(t, kinds, entity.MissingReferenceData)
	assert.Contains(t, kinds, entity.InsufficientData)
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := newTestAssembler()

	first, err := a.Assemble(context.Background(), sampleHistory())
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), sampleHistory())
	require.NoError(t, err)

	assert.Equal(t, first, second)

	changed := sampleHistory()
	changed.FlightActivity[0].EQM++
	third, err := a.Assemble(context.Background(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, first.Metadata.ReportID, third.Metadata.ReportID)
}

func TestAssembleEmptyHistory(t *testing.T) {
	report, err := newTestAssembler().Assemble(context.Background(), &entity.TravelHistory{})
	require.NoError(t, err)

	assert.Zero(t, report.Metadata.FlightCount)
	assert.Zero(t, report.Metadata.YearsSpan)
	assert.Empty(t, report.Ledger)
	assert.Empty(t, report.Trips)
	assert.Zero(t, report.Lifetime.TotalFlights)
	assert.Zero(t, report.Lifetime.TotalDistanceMiles)
	assert.Zero(t, report.Routes.HubUsage.TotalHubFlights)
	assert.Nil(t, report.Milestones.FirstFlight)
	assert.Empty(t, report.Temporal.Annual)
	assert.True(t, report.Patterns.TravelEras.Insufficient)
	assert.True(t, report.Patterns.BookingPatterns.Insufficient)
	assert.NotEmpty(t, report.Metadata.ReportID)
}

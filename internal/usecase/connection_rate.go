package usecase

import (
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	maxConnectionAirports = 10
	maxRecentConnections  = 10
)

// AnalyzeConnectionRate pairs consecutive dated flights that meet at an
// airport within a day. A paired flight is not reconsidered for the next pair.
func AnalyzeConnectionRate(ledger []entity.FlightRecord) entity.ConnectionRate {
	result := entity.ConnectionRate{
		TopConnectionAirports: []entity.AirportCount{},
		RecentConnections:     []entity.Connection{},
	}

	type datedFlight struct {
		rec *entity.FlightRecord
		day time.Time
	}
	var flown []datedFlight
	for i := range ledger {
		day, err := utils.ParseDate(ledger[i].DepartureDate)
		if err != nil {
			continue
		}
		flown = append(flown, datedFlight{rec: &ledger[i], day: day})
	}

	var connections []entity.Connection
	airports := newRankedCounter()

	for i := 0; i < len(flown)-1; i++ {
		cur, next := flown[i], flown[i+1]
		if cur.rec.Destination != next.rec.Origin {
			continue
		}
		diff := utils.DayDiff(cur.day, next.day)
		if diff < 0 || diff > 1 {
			continue
		}

		hub := cur.rec.Destination
		connections = append(connections, entity.Connection{
			Date:              cur.rec.DepartureDate,
			Origin:            cur.rec.Origin,
			ConnectionAirport: hub,
			Destination:       next.rec.Destination,
			FullRoute:         cur.rec.Origin + "-" + hub + "-" + next.rec.Destination,
		})
		airports.add(hub)
		result.TotalConnectingFlights += 2
		i++
	}

	result.TotalConnections = len(connections)
	result.TotalDirectFlights = len(flown) - result.TotalConnectingFlights
	result.ConnectionRate = utils.Percent(result.TotalConnectingFlights, len(flown))

	for _, code := range airports.ranked(maxConnectionAirports) {
		result.TopConnectionAirports = append(result.TopConnectionAirports, entity.AirportCount{Airport: code, Count: airports.counts[code]})
	}
	if len(result.TopConnectionAirports) > 0 {
		result.FavoriteConnectionHub = result.TopConnectionAirports[0].Airport
	}

	for i := len(connections) - 1; i >= 0 && len(result.RecentConnections) < maxRecentConnections; i-- {
		result.RecentConnections = append(result.RecentConnections, connections[i])
	}

	return result
}

package usecase

import (
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

// Maximum gap between departures for two legs to belong to the same trip
const maxLayover = 36 * time.Hour

// DetectTrips groups adjacent ledger entries into multi-leg trips. A leg
// extends the current trip when it departs from the previous leg's
// destination within maxLayover. Only trips of two or more legs are returned.
func DetectTrips(ledger []entity.FlightRecord) []entity.Trip {
	trips := []entity.Trip{}

	var (
		current     []*entity.FlightRecord
		prevInstant time.Time
		prevValid   bool
	)

	flush := func() {
		if len(current) >= 2 {
			trips = append(trips, buildTrip(current))
		}
	}

	for i := range ledger {
		rec := &ledger[i]
		instant, err := utils.ParseInstant(rec.DepartureDate, rec.DepartureTime)
		valid := err == nil

		if len(current) > 0 && valid && prevValid {
			prev := current[len(current)-1]
			gap := instant.Sub(prevInstant)
			if rec.Origin == prev.Destination && gap >= 0 && gap <= maxLayover {
				current = append(current, rec)
				prevInstant = instant
				continue
			}
		}

		flush()
		current = []*entity.FlightRecord{rec}
		prevInstant, prevValid = instant, valid
	}
	flush()

	return trips
}

func buildTrip(legs []*entity.FlightRecord) entity.Trip {
	first, last := legs[0], legs[len(legs)-1]

	trip := entity.Trip{
		Origin:      first.Origin,
		Destination: last.Destination,
		Via:         make([]string, 0, len(legs)-1),
		Legs:        len(legs),
		StartDate:   first.DepartureDate,
		EndDate:     last.DepartureDate,
		Segments:    make([]entity.TripLeg, 0, len(legs)),
	}

	for i, leg := range legs {
		if i < len(legs)-1 {
			trip.Via = append(trip.Via, leg.Destination)
		}
		trip.Segments = append(trip.Segments, entity.TripLeg{
			DepartureDate: leg.DepartureDate,
			DepartureTime: leg.DepartureTime,
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			Flight:        leg.MarketingFlight,
		})
	}
	return trip
}

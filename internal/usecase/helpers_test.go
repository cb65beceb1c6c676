package usecase

import (
	"strings"

	"travel-ledger-service/internal/domain/entity"
)

type stubDirectory map[string]*entity.Airport

func (d stubDirectory) Lookup(code string) (*entity.Airport, bool) {
	a, ok := d[strings.ToUpper(code)]
	return a, ok
}

func coord(v float64) *float64 { return &v }

func testDirectory() stubDirectory {
	return stubDirectory{
		"JFK": {Code: "JFK", City: "New York", Country: "US", Latitude: coord(40.6413), Longitude: coord(-73.7781)},
		"LHR": {Code: "LHR", City: "London", Country: "GB", Latitude: coord(51.4700), Longitude: coord(-0.4543)},
		"CDG": {Code: "CDG", City: "Paris", Country: "FR", Latitude: coord(49.0097), Longitude: coord(2.5479)},
		"DFW": {Code: "DFW", City: "Dallas", Country: "US", Latitude: coord(32.8998), Longitude: coord(-97.0403)},
		"ORD": {Code: "ORD", City: "Chicago", Country: "US", Latitude: coord(41.9742), Longitude: coord(-87.9073)},
		"LAX": {Code: "LAX", City: "Los Angeles", Country: "US", Latitude: coord(33.9416), Longitude: coord(-118.4085)},
		"NRT": {Code: "NRT", City: "Tokyo", Country: "JP", Latitude: coord(35.7720), Longitude: coord(140.3929)},
		"XNA": {Code: "XNA", City: "Bentonville", Country: "US"},
	}
}

func intPtr(v int) *int { return &v }

// flight builds a minimal ledger entry for analytics tests
func flight(date, origin, dest string, distance int) entity.FlightRecord {
	rec := entity.FlightRecord{
		DepartureDate: date,
		Origin:        origin,
		Destination:   dest,
		CabinBooked:   entity.CabinEconomy,
		CabinFlown:    entity.CabinEconomy,
		Source:        entity.SourceBoth,
		DataQuality:   entity.QualityFull,
	}
	if distance > 0 {
		rec.DistanceMiles = intPtr(distance)
	}
	return rec
}

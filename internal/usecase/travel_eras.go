package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	minEraFlights        = 20
	minEraChangeReasons  = 2
	eraDistanceShift     = 0.5
	eraPremiumShiftPoint = 20
)

// Era change reasons
const (
	EraVolumeChange   = "volume_change"
	EraHubChange      = "hub_change"
	EraDistanceChange = "distance_change"
	EraPremiumChange  = "premium_change"
)

type eraYear struct {
	year          int
	flights       int
	distance      int
	premium       int
	international int
	airports      *rankedCounter
	routes        *rankedCounter
}

func (y *eraYear) characteristics() entity.EraCharacteristics {
	return entity.EraCharacteristics{
		FlightVolume: flightVolume(y.flights),
		AvgDistance:  int(math.Round(float64(y.distance) / float64(y.flights))),
		TopAirport:   y.airports.top(),
		TopRoute:     y.routes.top(),
		PremiumRatio: utils.Percent(y.premium, y.flights),
		IntlRatio:    utils.Percent(y.international, y.flights),
	}
}

func flightVolume(flights int) string {
	switch {
	case flights < 20:
		return entity.VolumeLow
	case flights < 50:
		return entity.VolumeModerate
	default:
		return entity.VolumeHigh
	}
}

// DetectTravelEras splits the dated ledger into contiguous multi-year eras.
// A year opens a new era when at least two behavioral shifts fire against
// the running era; otherwise it is folded into the era.
func DetectTravelEras(ledger []entity.FlightRecord) entity.TravelEras {
	result := entity.TravelEras{Eras: []entity.TravelEra{}}

	byYear := make(map[int]*eraYear)
	dated := 0
	for i := range ledger {
		rec := &ledger[i]
		day, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			continue
		}
		dated++

		y, ok := byYear[day.Year()]
		if !ok {
			y = &eraYear{year: day.Year(), airports: newRankedCounter(), routes: newRankedCounter()}
			byYear[day.Year()] = y
		}
		y.flights++
		y.distance += rec.Distance()
		if rec.IsPremium() {
			y.premium++
		}
		if rec.International {
			y.international++
		}
		y.airports.add(rec.Origin)
		y.airports.add(rec.Destination)
		y.routes.add(undirectedRoute(rec.Origin, rec.Destination))
	}

	if dated < minEraFlights {
		result.Insufficient = true
		return result
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	type openEra struct {
		start   int
		chars   entity.EraCharacteristics
		flights int
		years   int
		reasons []string
	}

	var eras []openEra
	current := openEra{start: years[0], chars: byYear[years[0]].characteristics(), flights: byYear[years[0]].flights, years: 1}

	for _, yr := range years[1:] {
		y := byYear[yr]
		chars := y.characteristics()
		reasons := eraChangeReasons(current.chars, chars)

		if len(reasons) >= minEraChangeReasons {
			eras = append(eras, current)
			current = openEra{start: yr, chars: chars, flights: y.flights, years: 1, reasons: reasons}
			continue
		}
		current.chars = mergeEraCharacteristics(current.chars, chars)
		current.flights += y.flights
		current.years++
	}
	eras = append(eras, current)

	lastYear := years[len(years)-1]
	for i, e := range eras {
		end := lastYear
		if i+1 < len(eras) {
			end = eras[i+1].start - 1
		}
		descriptors := eraDescriptors(e.chars)
		result.Eras = append(result.Eras, entity.TravelEra{
			StartYear:         e.start,
			EndYear:           end,
			DurationYears:     end - e.start + 1,
			Characteristics:   e.chars,
			AvgFlightsPerYear: int(math.Round(float64(e.flights) / float64(e.years))),
			Descriptors:       descriptors,
			Label:             fmt.Sprintf("%s Era (%d-%d)", strings.Join(descriptors, " "), e.start, end),
			ChangeReasons:     e.reasons,
		})
	}
	result.TotalEras = len(result.Eras)

	return result
}

func eraChangeReasons(prev, cur entity.EraCharacteristics) []string {
	var reasons []string
	if prev.FlightVolume != cur.FlightVolume {
		reasons = append(reasons, EraVolumeChange)
	}
	if prev.TopAirport != "" && cur.TopAirport != "" && prev.TopAirport != cur.TopAirport {
		reasons = append(reasons, EraHubChange)
	}
	if prev.AvgDistance > 0 &&
		math.Abs(float64(cur.AvgDistance-prev.AvgDistance))/float64(prev.AvgDistance) > eraDistanceShift {
		reasons = append(reasons, EraDistanceChange)
	}
	if absInt(cur.PremiumRatio-prev.PremiumRatio) > eraPremiumShiftPoint {
		reasons = append(reasons, EraPremiumChange)
	}
	return reasons
}

// mergeEraCharacteristics takes the newest year's categorical values and a
// running average of the ratios
func mergeEraCharacteristics(prev, cur entity.EraCharacteristics) entity.EraCharacteristics {
	return entity.EraCharacteristics{
		FlightVolume: cur.FlightVolume,
		AvgDistance:  int(math.Round(float64(prev.AvgDistance+cur.AvgDistance) / 2)),
		TopAirport:   cur.TopAirport,
		TopRoute:     cur.TopRoute,
		PremiumRatio: int(math.Round(float64(prev.PremiumRatio+cur.PremiumRatio) / 2)),
		IntlRatio:    int(math.Round(float64(prev.IntlRatio+cur.IntlRatio) / 2)),
	}
}

func eraDescriptors(c entity.EraCharacteristics) []string {
	var d []string
	if c.PremiumRatio > 30 {
		d = append(d, "Premium")
	}
	if c.IntlRatio > 40 {
		d = append(d, "Global")
	} else if c.IntlRatio < 10 {
		d = append(d, "Domestic")
	}
	switch c.FlightVolume {
	case entity.VolumeHigh:
		d = append(d, "Road Warrior")
	case entity.VolumeLow:
		d = append(d, "Occasional")
	}
	if len(d) == 0 {
		d = append(d, "Balanced")
	}
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package usecase

import (
	"sort"
	"strings"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	maxTopRoutes        = 20
	maxNewAirportsShown = 10
)

var distanceThresholds = []int{10000, 25000, 50000, 100000, 250000, 500000, 750000, 1000000}

// datedFlights returns the ledger entries whose departure date parses, in ledger order
func datedFlights(ledger []entity.FlightRecord) []*entity.FlightRecord {
	out := make([]*entity.FlightRecord, 0, len(ledger))
	for i := range ledger {
		if _, err := utils.ParseDate(ledger[i].DepartureDate); err == nil {
			out = append(out, &ledger[i])
		}
	}
	return out
}

// carrierCode is the two-letter airline prefix of a flight designator
func carrierCode(flight string) string {
	flight = strings.ToUpper(strings.TrimSpace(flight))
	if len(flight) < 2 {
		return ""
	}
	return flight[:2]
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// rate returns part/whole rounded to the given decimals, 0 when whole is 0
func rate(part, whole int, decimals int) float64 {
	if whole == 0 {
		return 0
	}
	return utils.Round(float64(part)/float64(whole), decimals)
}

// CalculateLifetimeStats totals the whole history
func CalculateLifetimeStats(
	ledger []entity.FlightRecord,
	miles []entity.MilesTransaction,
	loungeVisits []entity.LoungeVisit,
	profile *entity.Profile,
) entity.LifetimeStats {
	flown := datedFlights(ledger)
	stats := entity.LifetimeStats{
		TotalFlights:      len(flown),
		CabinDistribution: make(map[string]int),
		LoungeVisits:      len(loungeVisits),
	}

	airports := make(map[string]struct{})
	countries := make(map[string]struct{})
	airlines := make(map[string]struct{})
	var hours float64

	for _, rec := range flown {
		stats.TotalDistanceMiles += rec.Distance()
		hours += rec.Duration()

		addNonEmpty(airports, rec.Origin, rec.Destination)
		addNonEmpty(countries, rec.OriginCountry, rec.DestinationCountry)
		addNonEmpty(airlines, carrierCode(rec.MarketingFlight), carrierCode(rec.OperatingFlight))

		if rec.International {
			stats.InternationalFlights++
		} else {
			stats.DomesticFlights++
		}
		if rec.Upgraded {
			stats.UpgradesReceived++
		}
		if rec.CabinFlown != "" {
			stats.CabinDistribution[rec.CabinFlown]++
		}
		stats.MilesEarnedFromFlights += rec.EarnedMiles()

		switch rec.DataQuality {
		case entity.QualityFull:
			stats.DataQuality.FullRecords++
		case entity.QualityPartial:
			stats.DataQuality.PartialRecords++
		case entity.QualityPNROnly:
			stats.DataQuality.PNROnlyRecords++
		}
	}

	for _, tx := range miles {
		switch tx.Type {
		case entity.MilesEarning:
			stats.MilesEarnedFromPartners += tx.TotalMiles
		case entity.MilesRedemption:
			stats.MilesRedeemed += -tx.TotalMiles
		}
	}
	stats.TotalMilesEarned = stats.MilesEarnedFromFlights + stats.MilesEarnedFromPartners

	stats.Airports = sortedKeys(airports)
	stats.Countries = sortedKeys(countries)
	stats.Airlines = sortedKeys(airlines)
	stats.UniqueAirports = len(stats.Airports)
	stats.UniqueCountries = len(stats.Countries)
	stats.UniqueAirlines = len(stats.Airlines)

	stats.TotalEstimatedHours = utils.Round(hours, 1)
	stats.TotalEstimatedDays = utils.Round(hours/24, 1)
	stats.InternationalRatio = rate(stats.InternationalFlights, stats.TotalFlights, 3)
	stats.UpgradeRate = rate(stats.UpgradesReceived, stats.TotalFlights, 3)
	stats.DataQuality.FullPercentage = utils.Round(rate(stats.DataQuality.FullRecords, stats.TotalFlights, 3)*100, 1)
	if stats.TotalFlights > 0 {
		stats.AverageFlightDistance = int(utils.Round(float64(stats.TotalDistanceMiles)/float64(stats.TotalFlights), 0))
		stats.AverageFlightDuration = utils.Round(hours/float64(stats.TotalFlights), 1)
	}

	if profile != nil {
		stats.CurrentStatus = profile.StatusTier
		stats.MillionMilerLevel = profile.MillionMilerLevel
	}
	if stats.MillionMilerLevel == "" {
		stats.MillionMilerLevel = "0"
	}
	return stats
}

// CalculateRouteStats ranks city pairs, routes and airports, and measures
// how many flights touch one of hubs
func CalculateRouteStats(ledger []entity.FlightRecord, hubs []string) entity.RouteStats {
	flown := datedFlights(ledger)
	stats := entity.RouteStats{
		TopCityPairs:         []entity.RouteCount{},
		TopDirectionalRoutes: []entity.DirectionalRoute{},
		MostVisitedAirports:  []entity.AirportCount{},
		HubUsage:             entity.HubUsage{ByHub: make(map[string]int)},
	}

	pairs := newRankedCounter()
	routes := newRankedCounter()
	airports := newRankedCounter()
	hubSet := make(map[string]struct{}, len(hubs))
	for _, h := range hubs {
		hubSet[strings.ToUpper(h)] = struct{}{}
	}

	var distances []int
	var longest, shortest *entity.FlightRecord

	for _, rec := range flown {
		pairs.add(undirectedRoute(rec.Origin, rec.Destination))
		routes.add(rec.Origin + "|" + rec.Destination)
		airports.add(rec.Origin)
		airports.add(rec.Destination)

		_, fromHub := hubSet[rec.Origin]
		_, toHub := hubSet[rec.Destination]
		if fromHub || toHub {
			stats.HubUsage.TotalHubFlights++
		}

		if d := rec.Distance(); d > 0 {
			distances = append(distances, d)
			if longest == nil || d > longest.Distance() {
				longest = rec
			}
			if shortest == nil || d < shortest.Distance() {
				shortest = rec
			}
		}
	}

	for _, key := range pairs.ranked(maxTopRoutes) {
		stats.TopCityPairs = append(stats.TopCityPairs, entity.RouteCount{Route: key, Count: pairs.counts[key]})
	}
	for _, key := range routes.ranked(maxTopRoutes) {
		origin, destination := splitKey(key)
		stats.TopDirectionalRoutes = append(stats.TopDirectionalRoutes, entity.DirectionalRoute{
			Origin:      origin,
			Destination: destination,
			Count:       routes.counts[key],
		})
	}
	for _, code := range airports.ranked(maxTopRoutes) {
		stats.MostVisitedAirports = append(stats.MostVisitedAirports, entity.AirportCount{Airport: code, Count: airports.counts[code]})
	}
	if len(stats.TopCityPairs) > 0 {
		top := stats.TopCityPairs[0]
		stats.MostFrequentRoute = &top
	}

	for _, h := range hubs {
		h = strings.ToUpper(h)
		if n, ok := airports.counts[h]; ok {
			stats.HubUsage.ByHub[h] = n
		}
	}
	stats.HubUsage.HubPercentage = utils.Round(rate(stats.HubUsage.TotalHubFlights, len(flown), 3)*100, 1)

	if len(distances) > 0 {
		total := 0
		for _, d := range distances {
			total += d
		}
		sorted := append([]int(nil), distances...)
		sort.Ints(sorted)
		stats.DistanceStats.Average = int(utils.Round(float64(total)/float64(len(distances)), 0))
		stats.DistanceStats.Median = sorted[len(sorted)/2]
		stats.DistanceStats.Longest = flightRef(longest)
		stats.DistanceStats.Shortest = flightRef(shortest)
	}
	return stats
}

func flightRef(rec *entity.FlightRecord) *entity.FlightRef {
	return &entity.FlightRef{
		Route:         rec.Origin + "-" + rec.Destination,
		DistanceMiles: rec.Distance(),
		Date:          rec.DepartureDate,
	}
}

// CalculatePartnerStats counts marketing and operating carriers. A codeshare
// is a flight marketed and operated by different airlines.
func CalculatePartnerStats(ledger []entity.FlightRecord) entity.PartnerStats {
	flown := datedFlights(ledger)
	marketing := newRankedCounter()
	operating := newRankedCounter()
	stats := entity.PartnerStats{
		ByMarketingCarrier: []entity.CarrierCount{},
		ByOperatingCarrier: []entity.CarrierCount{},
	}

	for _, rec := range flown {
		m, o := carrierCode(rec.MarketingFlight), carrierCode(rec.OperatingFlight)
		marketing.add(m)
		operating.add(o)
		if m != "" && o != "" && m != o {
			stats.CodeshareFlights++
		}
	}

	for _, code := range marketing.ranked(0) {
		stats.ByMarketingCarrier = append(stats.ByMarketingCarrier, entity.CarrierCount{Airline: code, Flights: marketing.counts[code]})
	}
	for _, code := range operating.ranked(0) {
		stats.ByOperatingCarrier = append(stats.ByOperatingCarrier, entity.CarrierCount{Airline: code, Flights: operating.counts[code]})
	}
	stats.CodeshareRate = rate(stats.CodeshareFlights, len(flown), 3)
	return stats
}

// CalculateMilestones finds firsts, cumulative distance markers and the most
// recent newly visited airports. The ledger is expected in date order.
func CalculateMilestones(ledger []entity.FlightRecord) entity.Milestones {
	flown := datedFlights(ledger)
	m := entity.Milestones{
		DistanceMilestones:  []entity.DistanceMilestone{},
		NewAirportsTimeline: []entity.NewAirport{},
	}
	if len(flown) == 0 {
		return m
	}

	first := flown[0]
	m.FirstFlight = &entity.MilestoneFlight{Route: first.Origin + "-" + first.Destination, Date: first.DepartureDate}

	seen := make(map[string]struct{})
	var timeline []entity.NewAirport
	cumulative, next := 0, 0

	for _, rec := range flown {
		route := rec.Origin + "-" + rec.Destination
		if m.FirstInternational == nil && rec.International {
			m.FirstInternational = &entity.MilestoneFlight{Route: route, Date: rec.DepartureDate, DestinationCountry: rec.DestinationCountry}
		}
		if m.FirstPremiumCabin == nil && rec.IsPremium() {
			m.FirstPremiumCabin = &entity.MilestoneFlight{Route: route, Date: rec.DepartureDate, Cabin: rec.CabinFlown}
		}

		cumulative += rec.Distance()
		for next < len(distanceThresholds) && cumulative >= distanceThresholds[next] {
			m.DistanceMilestones = append(m.DistanceMilestones, entity.DistanceMilestone{
				Miles:  distanceThresholds[next],
				Date:   rec.DepartureDate,
				Flight: route,
			})
			next++
		}

		for _, code := range []string{rec.Origin, rec.Destination} {
			if code == "" {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			timeline = append(timeline, entity.NewAirport{Airport: code, Date: rec.DepartureDate, Number: len(seen)})
		}
	}

	if len(timeline) > maxNewAirportsShown {
		timeline = timeline[len(timeline)-maxNewAirportsShown:]
	}
	m.NewAirportsTimeline = append(m.NewAirportsTimeline, timeline...)
	m.TotalAirports = len(seen)
	return m
}

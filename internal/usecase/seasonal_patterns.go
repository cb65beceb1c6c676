package usecase

import (
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	peakFactor          = 1.25
	lowFactor           = 0.75
	minRecurringYears   = 3
	maxRecurringResults = 10
)

// DetectSeasonalPatterns finds peak and low calendar months and routes flown
// in the same month across several years
func DetectSeasonalPatterns(ledger []entity.FlightRecord) entity.SeasonalPatterns {
	result := entity.SeasonalPatterns{
		MonthlyAverageFlights: []entity.MonthAverage{},
		PeakMonths:            []entity.MonthAverage{},
		LowMonths:             []entity.MonthAverage{},
		RecurringPatterns:     []entity.RecurringPattern{},
		QuarterDistribution:   newPeriodCounts(quarterLabels),
	}

	var monthCounts [12]int
	years := make(map[string]struct{})
	recurring := make(map[string]map[string]struct{})
	total := 0

	for i := range ledger {
		rec := &ledger[i]
		day, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			continue
		}
		total++
		month := int(day.Month()) - 1
		year := day.Format("2006")

		monthCounts[month]++
		years[year] = struct{}{}
		countPeriod(&result.QuarterDistribution[month/3], rec)

		key := monthLabels[month] + "|" + undirectedRoute(rec.Origin, rec.Destination)
		if recurring[key] == nil {
			recurring[key] = make(map[string]struct{})
		}
		recurring[key][year] = struct{}{}
	}

	if total == 0 {
		result.Insufficient = true
		return result
	}

	yearCount := float64(len(years))
	result.YearsObserved = len(years)
	mean := float64(total) / 12 / yearCount
	result.MeanFlightsPerMonth = utils.Round(mean, 2)

	for m, count := range monthCounts {
		avg := float64(count) / yearCount
		entry := entity.MonthAverage{Month: monthLabels[m], AvgFlights: utils.Round(avg, 1)}
		result.MonthlyAverageFlights = append(result.MonthlyAverageFlights, entry)
		switch {
		case avg > mean*peakFactor:
			result.PeakMonths = append(result.PeakMonths, entry)
		case avg < mean*lowFactor:
			result.LowMonths = append(result.LowMonths, entry)
		}
	}
	sort.SliceStable(result.PeakMonths, func(i, j int) bool {
		return result.PeakMonths[i].AvgFlights > result.PeakMonths[j].AvgFlights
	})
	sort.SliceStable(result.LowMonths, func(i, j int) bool {
		return result.LowMonths[i].AvgFlights < result.LowMonths[j].AvgFlights
	})

	for key, ys := range recurring {
		if len(ys) < minRecurringYears {
			continue
		}
		month, route := splitKey(key)
		pattern := entity.RecurringPattern{
			Month:         month,
			Route:         route,
			YearsAppeared: len(ys),
			Years:         make([]string, 0, len(ys)),
		}
		for y := range ys {
			pattern.Years = append(pattern.Years, y)
		}
		sort.Strings(pattern.Years)
		result.RecurringPatterns = append(result.RecurringPatterns, pattern)
	}

	monthIndex := make(map[string]int, len(monthLabels))
	for i, m := range monthLabels {
		monthIndex[m] = i
	}
	sort.Slice(result.RecurringPatterns, func(i, j int) bool {
		a, b := result.RecurringPatterns[i], result.RecurringPatterns[j]
		if a.YearsAppeared != b.YearsAppeared {
			return a.YearsAppeared > b.YearsAppeared
		}
		if a.Month != b.Month {
			return monthIndex[a.Month] < monthIndex[b.Month]
		}
		return a.Route < b.Route
	})
	if len(result.RecurringPatterns) > maxRecurringResults {
		result.RecurringPatterns = result.RecurringPatterns[:maxRecurringResults]
	}

	result.HasPeak = len(result.PeakMonths) > 0
	result.HasRecurring = len(result.RecurringPatterns) > 0
	if result.HasRecurring {
		top := result.RecurringPatterns[0]
		result.TopRecurring = &top
	}

	return result
}

// undirectedRoute names a city pair independent of direction
func undirectedRoute(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

func splitKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

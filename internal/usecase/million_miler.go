package usecase

import (
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	millionMiles          = 1_000_000
	maxMillionMilerLevel  = 4
	millionMilerTimeline  = 36
	millionMilerTrailYear = 3
)

// MillionMilerProgress accumulates lifetime EQM over dated ledger entries in
// ledger order. The projection uses the EQM of the three calendar years
// ending at asOfYear; zero selects the latest year in the ledger.
func MillionMilerProgress(ledger []entity.FlightRecord, asOfYear int) entity.MillionMilerProgress {
	result := entity.MillionMilerProgress{
		Milestones: []entity.MillionMilerMilestone{},
		Timeline:   []entity.MillionMilerMonth{},
	}

	cumulative := 0
	reached := 0
	monthly := make(map[string]int)
	byYear := make(map[int]int)
	latestYear := 0

	for i := range ledger {
		rec := &ledger[i]
		day, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			continue
		}
		cumulative += rec.EQM
		monthly[day.Format(utils.MONTH_LAYOUT)] += rec.EQM
		byYear[day.Year()] += rec.EQM
		latestYear = max(latestYear, day.Year())

		for reached < maxMillionMilerLevel && cumulative >= (reached+1)*millionMiles {
			reached++
			result.Milestones = append(result.Milestones, entity.MillionMilerMilestone{
				Level:    reached,
				Date:     rec.DepartureDate,
				Flight:   rec.Origin + "-" + rec.Destination,
				TotalEQM: cumulative,
			})
		}
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	running := 0
	for _, m := range months {
		running += monthly[m]
		result.Timeline = append(result.Timeline, entity.MillionMilerMonth{
			Month:         m,
			MonthlyEQM:    monthly[m],
			CumulativeEQM: running,
			Level:         min(maxMillionMilerLevel, running/millionMiles),
		})
	}
	if len(result.Timeline) > millionMilerTimeline {
		result.Timeline = result.Timeline[len(result.Timeline)-millionMilerTimeline:]
	}

	result.TotalLifetimeEQM = cumulative
	result.CurrentLevel = min(maxMillionMilerLevel, cumulative/millionMiles)
	if result.CurrentLevel == maxMillionMilerLevel {
		result.ProgressCurrent = cumulative - maxMillionMilerLevel*millionMiles
		result.ProgressPercent = 100
		return result
	}

	result.ProgressCurrent = cumulative % millionMiles
	result.ProgressNeeded = millionMiles - result.ProgressCurrent
	result.ProgressPercent = int(utils.Round(float64(result.ProgressCurrent)/10000, 0))

	if asOfYear == 0 {
		asOfYear = latestYear
	}
	for y := asOfYear - millionMilerTrailYear + 1; y <= asOfYear; y++ {
		result.TrailingYearsEQM += byYear[y]
	}

	rate := float64(result.TrailingYearsEQM) / millionMilerTrailYear
	if rate > 0 {
		years := utils.Round(float64(result.ProgressNeeded)/rate, 1)
		result.ProjectedYearsToNext = &years
	}

	return result
}

package usecase

import (
	"sort"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

var (
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	quarterLabels = []string{"Q1", "Q2", "Q3", "Q4"}
)

type yearAccumulator struct {
	stats     entity.YearStats
	airports  map[string]struct{}
	countries map[string]struct{}
}

// Aggregate groups the ledger and the miles ledger by calendar periods.
// Records whose date does not parse are left out of every grouping.
func Aggregate(ledger []entity.FlightRecord, miles []entity.MilesTransaction) entity.TemporalStats {
	years := make(map[string]*yearAccumulator)
	year := func(key string) *yearAccumulator {
		acc, ok := years[key]
		if !ok {
			acc = &yearAccumulator{
				stats:     entity.YearStats{Year: key},
				airports:  make(map[string]struct{}),
				countries: make(map[string]struct{}),
			}
			years[key] = acc
		}
		return acc
	}

	monthly := make(map[string]*entity.PeriodCount)
	byMonth := newPeriodCounts(monthLabels)
	byQuarter := newPeriodCounts(quarterLabels)
	byWeekday := newPeriodCounts(weekdayLabels)

	for i := range ledger {
		rec := &ledger[i]
		day, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			continue
		}

		acc := year(day.Format("2006"))
		s := &acc.stats
		s.Flights++
		s.DistanceMiles += rec.Distance()
		s.EstimatedHours += rec.Duration()
		s.EQM += rec.EQM
		s.EQS += rec.EQS
		s.EQD += rec.EQD
		s.MilesEarnedFlights += rec.EarnedMiles()
		if rec.International {
			s.International++
		} else {
			s.Domestic++
		}
		if rec.Upgraded {
			s.Upgrades++
		}
		addNonEmpty(acc.airports, rec.Origin, rec.Destination)
		addNonEmpty(acc.countries, rec.OriginCountry, rec.DestinationCountry)

		monthKey := day.Format(utils.MONTH_LAYOUT)
		mc, ok := monthly[monthKey]
		if !ok {
			mc = &entity.PeriodCount{Period: monthKey}
			monthly[monthKey] = mc
		}
		countPeriod(mc, rec)
		countPeriod(&byMonth[int(day.Month())-1], rec)
		countPeriod(&byQuarter[(int(day.Month())-1)/3], rec)
		countPeriod(&byWeekday[mondayIndex(day.Weekday())], rec)
	}

	for _, tx := range miles {
		day, err := utils.ParseDate(tx.Date)
		if err != nil {
			continue
		}
		s := &year(day.Format("2006")).stats
		switch tx.Type {
		case entity.MilesEarning:
			s.MilesEarnedPartner += tx.TotalMiles
		case entity.MilesRedemption:
			s.MilesRedeemed += -tx.TotalMiles
		}
	}

	keys := make([]string, 0, len(years))
	for k := range years {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stats := entity.TemporalStats{
		Annual:          make([]entity.YearStats, 0, len(keys)),
		Monthly:         make([]entity.PeriodCount, 0, len(monthly)),
		ByCalendarMonth: byMonth,
		ByQuarter:       byQuarter,
		ByDayOfWeek:     byWeekday,
		YearOverYear:    []entity.YearComparison{},
	}

	for _, k := range keys {
		acc := years[k]
		acc.stats.EstimatedHours = utils.Round(acc.stats.EstimatedHours, 1)
		acc.stats.EQS = utils.Round(acc.stats.EQS, 2)
		acc.stats.EQD = utils.Round(acc.stats.EQD, 2)
		acc.stats.EarnedMiles = acc.stats.MilesEarnedFlights + acc.stats.MilesEarnedPartner
		acc.stats.UniqueAirports = len(acc.airports)
		acc.stats.UniqueCountries = len(acc.countries)
		stats.Annual = append(stats.Annual, acc.stats)
	}

	monthKeys := make([]string, 0, len(monthly))
	for k := range monthly {
		monthKeys = append(monthKeys, k)
	}
	sort.Strings(monthKeys)
	for _, k := range monthKeys {
		stats.Monthly = append(stats.Monthly, *monthly[k])
	}

	for i := 1; i < len(stats.Annual); i++ {
		stats.YearOverYear = append(stats.YearOverYear, compareYears(stats.Annual[i], stats.Annual[i-1]))
	}

	stats.BusiestYear, stats.QuietestYear = busiestAndQuietest(stats.Annual)
	stats.BusiestMonth = busiestPeriod(byMonth)
	stats.BusiestDayOfWeek = busiestPeriod(byWeekday)

	return stats
}

func newPeriodCounts(labels []string) []entity.PeriodCount {
	counts := make([]entity.PeriodCount, len(labels))
	for i, l := range labels {
		counts[i].Period = l
	}
	return counts
}

func countPeriod(p *entity.PeriodCount, rec *entity.FlightRecord) {
	p.Flights++
	p.DistanceMiles += rec.Distance()
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func addNonEmpty(set map[string]struct{}, values ...string) {
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
}

func compareYears(cur, prev entity.YearStats) entity.YearComparison {
	return entity.YearComparison{
		Year:           cur.Year,
		PreviousYear:   prev.Year,
		Flights:        delta(float64(cur.Flights), float64(prev.Flights)),
		DistanceMiles:  delta(float64(cur.DistanceMiles), float64(prev.DistanceMiles)),
		EQM:            delta(float64(cur.EQM), float64(prev.EQM)),
		EQD:            delta(cur.EQD, prev.EQD),
		EarnedMiles:    delta(float64(cur.EarnedMiles), float64(prev.EarnedMiles)),
		International:  delta(float64(cur.International), float64(prev.International)),
		UniqueAirports: delta(float64(cur.UniqueAirports), float64(prev.UniqueAirports)),
	}
}

// delta leaves PercentChange nil when there is no prior value to compare against
func delta(cur, prev float64) entity.MetricDelta {
	d := entity.MetricDelta{
		Current:  cur,
		Previous: prev,
		Change:   utils.Round(cur-prev, 2),
	}
	if prev != 0 {
		pct := utils.Round((cur-prev)/prev*100, 0)
		d.PercentChange = &pct
	}
	return d
}

// busiestAndQuietest scans years in order, so ties go to the earlier year.
// Years with no flights (miles activity only) are not candidates.
func busiestAndQuietest(annual []entity.YearStats) (string, string) {
	var busiest, quietest *entity.YearStats
	for i := range annual {
		y := &annual[i]
		if y.Flights == 0 {
			continue
		}
		if busiest == nil || y.Flights > busiest.Flights {
			busiest = y
		}
		if quietest == nil || y.Flights < quietest.Flights {
			quietest = y
		}
	}
	if busiest == nil {
		return "", ""
	}
	return busiest.Year, quietest.Year
}

func busiestPeriod(counts []entity.PeriodCount) string {
	best := -1
	for i := range counts {
		if counts[i].Flights > 0 && (best < 0 || counts[i].Flights > counts[best].Flights) {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return counts[best].Period
}

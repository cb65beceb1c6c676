package usecase

import (
	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const maxLoungeAirports = 15

// CalculateLoyaltyStats summarizes elite-qualifying totals, miles sources,
// redemptions and upgrade certificates
func CalculateLoyaltyStats(
	ledger []entity.FlightRecord,
	miles []entity.MilesTransaction,
	certificates []entity.SWUCertificate,
	profile *entity.Profile,
) entity.LoyaltyStats {
	stats := entity.LoyaltyStats{
		EarningsByCategory:    []entity.CategoryMiles{},
		RedemptionsByCategory: []entity.CategoryMiles{},
		CabinDistribution:     make(map[string]int),
	}

	var eqs, eqd float64
	for _, rec := range datedFlights(ledger) {
		stats.TotalEQM += rec.EQM
		eqs += rec.EQS
		eqd += rec.EQD
		stats.FlightBaseMiles += rec.BaseMiles
		stats.FlightBonusMiles += rec.BonusMiles
		if rec.Upgraded {
			stats.DetectedUpgrades++
		}
		if rec.CabinFlown != "" {
			stats.CabinDistribution[rec.CabinFlown]++
		}
	}
	stats.TotalEQS = utils.Round(eqs, 1)
	stats.TotalEQD = utils.Round(eqd, 2)
	stats.TotalFlightMiles = stats.FlightBaseMiles + stats.FlightBonusMiles

	stats.EarningsByCategory = append(stats.EarningsByCategory, milesByCategory(miles, entity.MilesEarning)...)
	stats.RedemptionsByCategory = append(stats.RedemptionsByCategory, milesByCategory(miles, entity.MilesRedemption)...)
	for _, c := range stats.RedemptionsByCategory {
		stats.RedemptionsTotal += c.Miles
	}

	for _, c := range certificates {
		stats.SWU.TotalEarned += c.Earned
		stats.SWU.TotalUsed += c.Used
		stats.SWU.TotalExpired += c.Expired
		stats.SWU.CurrentlyAvailable += c.Available
	}
	stats.SWU.UseRate = rate(stats.SWU.TotalUsed, stats.SWU.TotalEarned, 2)

	if profile != nil {
		stats.CurrentStatus = profile.StatusTier
		stats.MillionMilerLevel = profile.MillionMilerLevel
	}
	if stats.MillionMilerLevel == "" {
		stats.MillionMilerLevel = "0"
	}
	return stats
}

// milesByCategory sums absolute miles of one transaction type per category,
// in first-seen category order
func milesByCategory(miles []entity.MilesTransaction, txType string) []entity.CategoryMiles {
	var out []entity.CategoryMiles
	index := make(map[string]int)
	for _, tx := range miles {
		if tx.Type != txType {
			continue
		}
		amount := tx.TotalMiles
		if amount < 0 {
			amount = -amount
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, entity.CategoryMiles{Category: tx.Category})
		}
		out[i].Miles += amount
	}
	return out
}

// CalculateLoungeStats summarizes lounge registrations
func CalculateLoungeStats(visits []entity.LoungeVisit) entity.LoungeStats {
	stats := entity.LoungeStats{
		TotalVisits:  len(visits),
		ByAirport:    []entity.AirportCount{},
		ByLoungeType: make(map[string]int),
		ByYear:       make(map[string]int),
	}

	airports := newRankedCounter()
	party := 0
	for i := range visits {
		v := &visits[i]
		airports.add(v.AirportCode())
		if v.LoungeType != "" {
			stats.ByLoungeType[v.LoungeType]++
		}
		if year := utils.YearOf(v.Date()); year != "" {
			stats.ByYear[year]++
		}

		if v.DiningEligible {
			stats.Dining.TimesEligible++
		}
		if v.DiningUsed {
			stats.Dining.TimesUsed++
		}
		if v.FlagshipEligible {
			stats.Flagship.TimesEligible++
		}
		if v.FlagshipUsed {
			stats.Flagship.TimesUsed++
		}

		size := max(v.Guests, 1)
		party += size
		stats.TotalGuestsBrought += size - 1
	}

	for _, code := range airports.ranked(maxLoungeAirports) {
		stats.ByAirport = append(stats.ByAirport, entity.AirportCount{Airport: code, Count: airports.counts[code]})
	}
	stats.Dining.UseRate = rate(stats.Dining.TimesUsed, stats.Dining.TimesEligible, 2)
	stats.Flagship.UseRate = rate(stats.Flagship.TimesUsed, stats.Flagship.TimesEligible, 2)
	stats.AveragePartySize = rate(party, len(visits), 1)
	return stats
}

package usecase

import (
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const maxFareClassResults = 15

// AnalyzeMilesEfficiency measures award miles earned per mile flown, grouped
// by booking class, over dated flights with a known distance
func AnalyzeMilesEfficiency(ledger []entity.FlightRecord, miles []entity.MilesTransaction) entity.MilesEfficiency {
	type fareTotals struct {
		flights, distance, base, bonus int
	}
	byFare := make(map[string]*fareTotals)
	var order []string
	var totalDistance, totalBase, totalBonus int

	for i := range ledger {
		rec := &ledger[i]
		if rec.Distance() <= 0 {
			continue
		}
		if _, err := utils.ParseDate(rec.DepartureDate); err != nil {
			continue
		}

		fc := rec.BookingClass
		if fc == "" {
			fc = "Unknown"
		}
		t, ok := byFare[fc]
		if !ok {
			t = &fareTotals{}
			byFare[fc] = t
			order = append(order, fc)
		}
		t.flights++
		t.distance += rec.Distance()
		t.base += rec.BaseMiles
		t.bonus += rec.BonusMiles

		totalDistance += rec.Distance()
		totalBase += rec.BaseMiles
		totalBonus += rec.BonusMiles
	}

	result := entity.MilesEfficiency{
		ByFareClass:            make([]entity.FareClassEfficiency, 0, len(order)),
		TotalFlightMilesEarned: totalBase + totalBonus,
		OverallEarningRate:     earningRate(totalBase+totalBonus, totalDistance),
		BonusRatio:             utils.Percent(totalBonus, totalBase),
	}

	for _, fc := range order {
		t := byFare[fc]
		result.ByFareClass = append(result.ByFareClass, entity.FareClassEfficiency{
			FareClass:       fc,
			Flights:         t.flights,
			TotalDistance:   t.distance,
			TotalBaseMiles:  t.base,
			TotalBonusMiles: t.bonus,
			EarningRate:     earningRate(t.base+t.bonus, t.distance),
		})
	}
	sort.SliceStable(result.ByFareClass, func(i, j int) bool {
		return result.ByFareClass[i].EarningRate > result.ByFareClass[j].EarningRate
	})
	if len(result.ByFareClass) > maxFareClassResults {
		result.ByFareClass = result.ByFareClass[:maxFareClassResults]
	}

	for _, tx := range miles {
		switch tx.Type {
		case entity.MilesEarning:
			result.TotalPartnerMilesEarned += tx.TotalMiles
		case entity.MilesRedemption:
			result.TotalMilesRedeemed += -tx.TotalMiles
		}
	}
	result.NetMilesBalance = result.TotalFlightMilesEarned + result.TotalPartnerMilesEarned - result.TotalMilesRedeemed

	return result
}

func earningRate(earned, distance int) float64 {
	if distance == 0 {
		return 0
	}
	return utils.Round(float64(earned)/float64(distance), 2)
}

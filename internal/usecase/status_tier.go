package usecase

import (
	"math"
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

type tierThreshold struct {
	tier entity.Tier
	eqm  int
	eqd  float64
}

// Ordered lowest to highest
var tierThresholds = []tierThreshold{
	{entity.TierGold, 30000, 4000},
	{entity.TierPlatinum, 60000, 9000},
	{entity.TierPlatinumPro, 90000, 14000},
	{entity.TierExecutivePlatinum, 120000, 18000},
}

// InferTier returns the highest tier met by either EQM or EQD, and which
// metric qualified it. EQM is reported when both qualify.
func InferTier(eqm int, eqd float64) (entity.Tier, string) {
	for i := len(tierThresholds) - 1; i >= 0; i-- {
		t := tierThresholds[i]
		if eqm >= t.eqm {
			return t.tier, "EQM"
		}
		if eqd >= t.eqd {
			return t.tier, "EQD"
		}
	}
	return entity.TierMember, ""
}

// TierProgressFor measures a year's totals against the tier above tier.
// It returns nil at the top tier.
func TierProgressFor(tier entity.Tier, eqm int, eqd float64) *entity.TierProgress {
	next := -1
	if tier == entity.TierMember {
		next = 0
	}
	for i, t := range tierThresholds {
		if t.tier == tier {
			next = i + 1
		}
	}
	if next < 0 || next >= len(tierThresholds) {
		return nil
	}

	t := tierThresholds[next]
	p := &entity.TierProgress{
		NextTier:    t.tier,
		EQMNeeded:   max(0, t.eqm-eqm),
		EQDNeeded:   utils.Round(math.Max(0, t.eqd-eqd), 2),
		EQMProgress: min(100, int(math.Round(float64(eqm)/float64(t.eqm)*100))),
		EQDProgress: min(100, int(math.Round(eqd/t.eqd*100))),
	}
	p.Percent = max(p.EQMProgress, p.EQDProgress)
	return p
}

// InferStatusHistory infers the tier earned in each calendar year of the
// ledger. Status earned in one year is enjoyed the next.
func InferStatusHistory(ledger []entity.FlightRecord) []entity.StatusYear {
	type totals struct {
		eqm      int
		eqd, eqs float64
	}
	byYear := make(map[int]*totals)

	for i := range ledger {
		rec := &ledger[i]
		day, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			continue
		}
		t, ok := byYear[day.Year()]
		if !ok {
			t = &totals{}
			byYear[day.Year()] = t
		}
		t.eqm += rec.EQM
		t.eqd += rec.EQD
		t.eqs += rec.EQS
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	history := make([]entity.StatusYear, 0, len(years))
	for _, y := range years {
		t := byYear[y]
		tier, qualifiedBy := InferTier(t.eqm, t.eqd)
		history = append(history, entity.StatusYear{
			Year:        y,
			YearEnjoyed: y + 1,
			Tier:        tier,
			QualifiedBy: qualifiedBy,
			EQM:         t.eqm,
			EQD:         utils.Round(t.eqd, 2),
			EQS:         utils.Round(t.eqs, 1),
			Progress:    TierProgressFor(tier, t.eqm, t.eqd),
		})
	}
	return history
}

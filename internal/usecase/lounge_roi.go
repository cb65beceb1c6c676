package usecase

import (
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

// Estimated dollar value per lounge event
const (
	loungeValuePerVisit    = 50
	loungeValuePerGuest    = 35
	loungeValuePerFlagship = 25
	loungeValuePerDining   = 40

	loungeBreakEvenVisits = 7
)

// CalculateLoungeROI estimates the yearly value of lounge access
func CalculateLoungeROI(visits []entity.LoungeVisit) entity.LoungeROI {
	result := entity.LoungeROI{YearlyBreakdown: []entity.LoungeYearValue{}}
	if len(visits) == 0 {
		result.Insufficient = true
		return result
	}

	byYear := make(map[string]*entity.LoungeYearValue)
	for i := range visits {
		v := &visits[i]
		year := utils.YearOf(v.Date())
		if year == "" {
			continue
		}
		y, ok := byYear[year]
		if !ok {
			y = &entity.LoungeYearValue{Year: year}
			byYear[year] = y
		}
		y.Visits++
		party := v.Guests
		if party < 1 {
			party = 1
		}
		y.Guests += party - 1
		if v.IsFlagship() {
			y.FlagshipVisits++
		}
		if v.DiningEligible {
			y.DiningEligible++
		}
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)

	for _, year := range years {
		y := byYear[year]
		y.EstimatedValue = y.Visits*loungeValuePerVisit +
			y.Guests*loungeValuePerGuest +
			y.FlagshipVisits*loungeValuePerFlagship +
			y.DiningEligible*loungeValuePerDining
		if y.Visits > 0 {
			y.ValuePerVisit = int(utils.Round(float64(y.EstimatedValue)/float64(y.Visits), 0))
		}
		result.YearlyBreakdown = append(result.YearlyBreakdown, *y)
		result.TotalEstimatedValue += y.EstimatedValue
	}

	result.TotalVisits = len(visits)
	if len(years) > 0 {
		result.AvgVisitsPerYear = utils.Round(float64(result.TotalVisits)/float64(len(years)), 1)
	}
	result.AvgValuePerVisit = int(utils.Round(float64(result.TotalEstimatedValue)/float64(result.TotalVisits), 0))
	result.MembershipPaysOff = result.AvgVisitsPerYear >= loungeBreakEvenVisits

	return result
}

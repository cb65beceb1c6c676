package usecase

import (
	"regexp"
	"sort"
	"strings"

	"travel-ledger-service/internal/domain/entity"
)

type categoryRule struct {
	pattern  *regexp.Regexp
	category string
}

// First match wins. CARD is tested before CAR.
var earningRules = []categoryRule{
	{regexp.MustCompile(`CITI|CARD|CREDIT|BARCLAYS`), "credit_card"},
	{regexp.MustCompile(`BONUS`), "bonus"},
	{regexp.MustCompile(`PROMO`), "promotion"},
	{regexp.MustCompile(`HOTEL|HYATT|MARRIOTT`), "partner_hotel"},
	{regexp.MustCompile(`CAR|AVIS|HERTZ`), "partner_car"},
	{regexp.MustCompile(`ESHOPPING|SHOP|DINING`), "partner_shopping"},
	{regexp.MustCompile(`MILLION MILER`), "million_miler"},
	{regexp.MustCompile(`TRANSFER`), "transfer"},
}

var redemptionRules = []categoryRule{
	{regexp.MustCompile(`UPGRADE`), "upgrade"},
	{regexp.MustCompile(`AWARD|TICKET`), "award_flight"},
	{regexp.MustCompile(`HOTEL`), "hotel"},
	{regexp.MustCompile(`CAR`), "car"},
	{regexp.MustCompile(`EXPIRE`), "expiration"},
}

func categorize(rules []categoryRule, description string) string {
	desc := strings.ToUpper(description)
	for _, r := range rules {
		if r.pattern.MatchString(desc) {
			return r.category
		}
	}
	return "other"
}

// CategorizeEarning classifies a partner earning description
func CategorizeEarning(description string) string {
	return categorize(earningRules, description)
}

// CategorizeRedemption classifies a redemption description
func CategorizeRedemption(description string) string {
	return categorize(redemptionRules, description)
}

// NormalizeMilesTransactions merges partner earnings and redemptions into one
// date-ordered miles ledger. Redemptions carry negative totals.
func NormalizeMilesTransactions(partner []entity.PartnerActivity, redemptions []entity.Redemption) []entity.MilesTransaction {
	txs := make([]entity.MilesTransaction, 0, len(partner)+len(redemptions))

	for _, p := range partner {
		date := strings.TrimSpace(p.ActivityDate)
		if date == "" {
			date = strings.TrimSpace(p.PostedDate)
		}
		txs = append(txs, entity.MilesTransaction{
			Date:        date,
			PostedDate:  strings.TrimSpace(p.PostedDate),
			Type:        entity.MilesEarning,
			Category:    CategorizeEarning(p.Description),
			Description: strings.TrimSpace(p.Description),
			BaseMiles:   p.BaseMiles,
			BonusMiles:  p.BonusMiles,
			TotalMiles:  p.BaseMiles + p.BonusMiles,
			EQD:         p.EQD,
		})
	}

	for _, r := range redemptions {
		miles := r.MilesRedeemed
		if miles < 0 {
			miles = -miles
		}
		txs = append(txs, entity.MilesTransaction{
			Date:        strings.TrimSpace(r.Date),
			Type:        entity.MilesRedemption,
			Category:    CategorizeRedemption(r.Description),
			Description: strings.TrimSpace(r.Description),
			TotalMiles:  -miles,
		})
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date < txs[j].Date
	})
	return txs
}

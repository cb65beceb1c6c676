package usecase

import (
	"sort"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/utils"
)

const (
	maxLeadDays         = 365
	lastMinuteLeadDays  = 7
	advancePlanLeadDays = 60
	bookerProfileShare  = 0.3
)

type leadBucket struct {
	label string
	upTo  int
}

var leadBuckets = []leadBucket{
	{"Same day", 0},
	{"1-7 days", 7},
	{"8-14 days", 14},
	{"15-30 days", 30},
	{"31-60 days", 60},
	{"61-90 days", 90},
	{"90+ days", maxLeadDays},
}

// LeadTimeBucket returns the histogram label for a lead time in days
func LeadTimeBucket(days int) string {
	for _, b := range leadBuckets {
		if days <= b.upTo {
			return b.label
		}
	}
	return leadBuckets[len(leadBuckets)-1].label
}

// AnalyzeBookingLeadTime measures calendar days between booking and departure.
// Lead times outside [0, 365] and unparsable dates are discarded.
func AnalyzeBookingLeadTime(ledger []entity.FlightRecord) entity.BookingLeadTime {
	result := entity.BookingLeadTime{Distribution: make([]entity.LeadTimeBucket, len(leadBuckets))}
	for i, b := range leadBuckets {
		result.Distribution[i].Label = b.label
	}

	var leads, domestic, international []int
	for i := range ledger {
		rec := &ledger[i]
		if rec.BookingDate == "" {
			continue
		}
		booked, err := utils.ParseDate(rec.BookingDate)
		if err != nil {
			result.DiscardedLeadTimes++
			continue
		}
		departed, err := utils.ParseDate(rec.DepartureDate)
		if err != nil {
			result.DiscardedLeadTimes++
			continue
		}

		days := utils.DayDiff(booked, departed)
		if days < 0 || days > maxLeadDays {
			result.DiscardedLeadTimes++
			continue
		}

		leads = append(leads, days)
		if rec.International {
			international = append(international, days)
		} else {
			domestic = append(domestic, days)
		}
		for j, b := range leadBuckets {
			if days <= b.upTo {
				result.Distribution[j].Count++
				break
			}
		}
		if days <= lastMinuteLeadDays {
			result.LastMinuteBookings++
		}
		if days >= advancePlanLeadDays {
			result.AdvancePlanners++
		}
	}

	if len(leads) == 0 {
		result.Insufficient = true
		return result
	}

	sort.Ints(leads)
	result.TotalBookingsAnalyzed = len(leads)
	result.AverageLeadDays = averageDays(leads)
	result.MedianLeadDays = intPtrOf(leads[len(leads)/2])
	result.MinLeadDays = intPtrOf(leads[0])
	result.MaxLeadDays = intPtrOf(leads[len(leads)-1])
	result.DomesticAverage = averageDays(domestic)
	result.InternationalAverage = averageDays(international)
	result.Profile = classifyBooker(result.LastMinuteBookings, result.AdvancePlanners, len(leads))

	return result
}

func classifyBooker(lastMinute, advance, total int) entity.BookerProfile {
	switch {
	case float64(lastMinute)/float64(total) > bookerProfileShare:
		return entity.BookerSpontaneous
	case float64(advance)/float64(total) > bookerProfileShare:
		return entity.BookerPlanner
	default:
		return entity.BookerAverage
	}
}

func averageDays(days []int) *int {
	if len(days) == 0 {
		return nil
	}
	sum := 0
	for _, d := range days {
		sum += d
	}
	return intPtrOf(int(utils.Round(float64(sum)/float64(len(days)), 0)))
}

func intPtrOf(v int) *int {
	return &v
}

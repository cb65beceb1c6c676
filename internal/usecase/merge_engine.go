package usecase

import (
	"sort"
	"strings"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"
	"travel-ledger-service/pkg/logger"
	"travel-ledger-service/pkg/utils"
)

const defaultAirline = "AA"

// MergeResult is the deduplicated ledger plus what was dropped or degraded on the way
type MergeResult struct {
	Ledger      []entity.FlightRecord
	Annotations []entity.Annotation
	Stats       entity.MergeStats
}

// MergeEngine fuses itinerary segments with flight-linked loyalty activity
type MergeEngine struct {
	directory repository.AirportDirectory
	logger    logger.Logger
}

// NewMergeEngine creates a new merge engine
func NewMergeEngine(directory repository.AirportDirectory, logger logger.Logger) *MergeEngine {
	return &MergeEngine{
		directory: directory,
		logger:    logger,
	}
}

// Merge builds the ledger. Segments are processed first in input order, then
// any activity entry whose flight was not already covered. The result is
// sorted by departure date and time with input order kept for ties.
func (m *MergeEngine) Merge(segments []entity.RawFlightSegment, activity []entity.RawMilesActivity) *MergeResult {
	result := &MergeResult{}
	notes := newAnnotationSet()

	// Primary keys: last entry wins. Fallback keys: first entry wins.
	byPrimary := make(map[string]int, len(activity))
	byFallback := make(map[string]int, len(activity))
	for i, act := range activity {
		primary, fallback := mergeKeys(act.DepartureDate, act.Origin, act.Destination, act.FlightNumber)
		if primary != "" {
			byPrimary[primary] = i
		}
		if _, ok := byFallback[fallback]; !ok {
			byFallback[fallback] = i
		}
	}

	seen := make(map[string]bool)
	ledger := make([]entity.FlightRecord, 0, len(segments)+len(activity))

	for _, seg := range segments {
		if isCanceled(seg) {
			result.Stats.SkippedCanceled++
			continue
		}

		primary, fallback := mergeKeys(seg.DepartureDate, seg.Origin, seg.Destination, seg.MarketingFlight)
		if (primary != "" && seen[primary]) || seen[fallback] {
			result.Stats.SkippedDuplicate++
			continue
		}
		markSeen(seen, primary, fallback)

		var match *entity.RawMilesActivity
		if i, ok := byPrimary[primary]; ok && primary != "" {
			match = &activity[i]
		} else if i, ok := byFallback[fallback]; ok {
			match = &activity[i]
		}

		rec := m.fromSegment(seg, match)
		if match != nil {
			result.Stats.Both++
		} else {
			result.Stats.PNROnly++
		}
		m.enrich(&rec, notes)
		ledger = append(ledger, rec)
	}

	for _, act := range activity {
		primary, fallback := mergeKeys(act.DepartureDate, act.Origin, act.Destination, act.FlightNumber)
		if (primary != "" && seen[primary]) || seen[fallback] {
			continue
		}
		markSeen(seen, primary, fallback)

		rec := m.fromActivity(act)
		result.Stats.ActivityOnly++
		m.enrich(&rec, notes)
		ledger = append(ledger, rec)
	}

	sortLedger(ledger)

	result.Ledger = ledger
	result.Annotations = notes.list()

	m.logger.Debug("Merged ledger",
		"records", len(ledger),
		"both", result.Stats.Both,
		"pnrOnly", result.Stats.PNROnly,
		"activityOnly", result.Stats.ActivityOnly,
		"skippedCanceled", result.Stats.SkippedCanceled,
		"skippedDuplicate", result.Stats.SkippedDuplicate,
	)

	return result
}

func (m *MergeEngine) fromSegment(seg entity.RawFlightSegment, match *entity.RawMilesActivity) entity.FlightRecord {
	rec := entity.FlightRecord{
		PNR:             strings.TrimSpace(seg.PNR),
		BookingDate:     strings.TrimSpace(seg.BookingDate),
		DepartureDate:   strings.TrimSpace(seg.DepartureDate),
		DepartureTime:   strings.TrimSpace(seg.DepartureTime),
		ArrivalDate:     strings.TrimSpace(seg.ArrivalDate),
		ArrivalTime:     strings.TrimSpace(seg.ArrivalTime),
		Status:          seg.Status,
		Origin:          normalizeCode(seg.Origin),
		Destination:     normalizeCode(seg.Destination),
		MarketingFlight: strings.TrimSpace(seg.MarketingFlight),
		OperatingFlight: strings.TrimSpace(seg.OperatingFlight),
		BookingClass:    strings.ToUpper(strings.TrimSpace(seg.BookingClass)),
		Source:          entity.SourcePNROnly,
		DataQuality:     entity.QualityPNROnly,
	}

	if match != nil {
		rec.Source = entity.SourceBoth
		rec.DataQuality = entity.QualityFull
		rec.TicketNumber = match.TicketNumber
		rec.EQM = match.EQM
		rec.EQS = match.EQS
		rec.EQD = match.EQD
		rec.BaseMiles = match.BaseMiles
		rec.BonusMiles = match.BonusMiles
		if rec.BookingClass == "" {
			rec.BookingClass = strings.ToUpper(strings.TrimSpace(match.FareClass))
		}
	}

	rec.CabinBooked = CabinForFareClass(rec.BookingClass)
	rec.CabinFlown = rec.CabinBooked
	if cabin := strings.TrimSpace(seg.CabinCode); cabin != "" {
		rec.CabinFlown = CabinForFareClass(cabin)
	}
	rec.Upgraded = IsEconomyFareClass(rec.BookingClass) && IsPremiumCabin(rec.CabinFlown)

	return rec
}

func (m *MergeEngine) fromActivity(act entity.RawMilesActivity) entity.FlightRecord {
	airline := strings.ToUpper(strings.TrimSpace(act.Airline))
	if airline == "" {
		airline = defaultAirline
	}
	fareClass := strings.ToUpper(strings.TrimSpace(act.FareClass))
	cabin := CabinForFareClass(fareClass)

	return entity.FlightRecord{
		DepartureDate:   strings.TrimSpace(act.DepartureDate),
		TicketNumber:    act.TicketNumber,
		Origin:          normalizeCode(act.Origin),
		Destination:     normalizeCode(act.Destination),
		MarketingFlight: airline + strings.TrimSpace(act.FlightNumber),
		BookingClass:    fareClass,
		CabinBooked:     cabin,
		CabinFlown:      cabin,
		EQM:             act.EQM,
		EQS:             act.EQS,
		EQD:             act.EQD,
		BaseMiles:       act.BaseMiles,
		BonusMiles:      act.BonusMiles,
		Source:          entity.SourceActivityOnly,
		DataQuality:     entity.QualityPartial,
	}
}

// enrich fills the directory-derived fields. Unresolved airports leave them
// empty and are annotated; the record itself is always kept.
func (m *MergeEngine) enrich(rec *entity.FlightRecord, notes *annotationSet) {
	if _, err := utils.ParseDate(rec.DepartureDate); err != nil {
		subject := rec.DepartureDate
		if subject == "" {
			subject = "(empty)"
		}
		notes.add(entity.MalformedRecord, subject, "unparsable departureDate")
	}

	origin := m.resolve(rec.Origin, notes)
	dest := m.resolve(rec.Destination, notes)

	if origin != nil {
		rec.OriginCity = origin.City
		rec.OriginCountry = origin.Country
	}
	if dest != nil {
		rec.DestinationCity = dest.City
		rec.DestinationCountry = dest.Country
	}

	if origin.HasCoordinates() && dest.HasCoordinates() {
		distance := utils.HaversineMiles(*origin.Latitude, *origin.Longitude, *dest.Latitude, *dest.Longitude)
		duration := utils.EstimateDurationHours(distance)
		rec.DistanceMiles = &distance
		rec.EstimatedDurationHours = &duration
	}

	rec.International = rec.OriginCountry != "" && rec.DestinationCountry != "" &&
		rec.OriginCountry != rec.DestinationCountry
}

func (m *MergeEngine) resolve(code string, notes *annotationSet) *entity.Airport {
	if code == "" {
		notes.add(entity.MissingReferenceData, "(empty)", "blank airport code")
		return nil
	}
	if m.directory == nil {
		notes.add(entity.MissingReferenceData, code, "airport not in directory")
		return nil
	}
	airport, ok := m.directory.Lookup(code)
	if !ok || airport == nil {
		notes.add(entity.MissingReferenceData, code, "airport not in directory")
		return nil
	}
	if !airport.HasCoordinates() {
		notes.add(entity.MissingReferenceData, code, "airport has no coordinates")
	}
	return airport
}

// mergeKeys returns the primary date|origin|destination|flightDigits key and
// the fallback date|origin|destination key. The primary key is empty when the
// flight number carries no digits.
func mergeKeys(date, origin, destination, flight string) (string, string) {
	fallback := strings.TrimSpace(date) + "|" + normalizeCode(origin) + "|" + normalizeCode(destination)
	digits := flightDigits(flight)
	if digits == "" {
		return "", fallback
	}
	return fallback + "|" + digits, fallback
}

func flightDigits(flight string) string {
	var b strings.Builder
	for _, c := range flight {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

func markSeen(seen map[string]bool, primary, fallback string) {
	if primary != "" {
		seen[primary] = true
	}
	seen[fallback] = true
}

func isCanceled(seg entity.RawFlightSegment) bool {
	if seg.Canceled {
		return true
	}
	status := strings.ToUpper(strings.TrimSpace(seg.Status))
	return status == "CANCELED" || status == "CANCELLED"
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// sortLedger orders by departure date then time, string-lexically and stable
func sortLedger(ledger []entity.FlightRecord) {
	sort.SliceStable(ledger, func(i, j int) bool {
		if ledger[i].DepartureDate != ledger[j].DepartureDate {
			return ledger[i].DepartureDate < ledger[j].DepartureDate
		}
		return ledger[i].DepartureTime < ledger[j].DepartureTime
	})
}

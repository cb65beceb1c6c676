// internal/domain/entity/flight_record.go
package entity

// Source identifies which exports contributed to a ledger entry
type Source string

const (
	SourceBoth         Source = "both"
	SourcePNROnly      Source = "pnr_only"
	SourceActivityOnly Source = "activity_only"
)

// DataQuality grades how complete a ledger entry is
type DataQuality string

const (
	QualityFull    DataQuality = "full"
	QualityPartial DataQuality = "partial"
	QualityPNROnly DataQuality = "pnr_only"
)

// Cabin codes
const (
	CabinFirst          = "F"
	CabinBusiness       = "C"
	CabinPremiumEconomy = "W"
	CabinEconomy        = "Y"
)

// FlightRecord is one merged, enriched ledger entry. It is built once by the
// merge engine and treated as read-only afterwards.
type FlightRecord struct {
	PNR           string `json:"pnr,omitempty"`
	BookingDate   string `json:"bookingDate,omitempty"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalDate   string `json:"arrivalDate,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	Status        string `json:"status,omitempty"`
	TicketNumber  string `json:"ticketNumber,omitempty"`

	Origin             string `json:"origin"`
	OriginCity         string `json:"originCity,omitempty"`
	OriginCountry      string `json:"originCountry,omitempty"`
	Destination        string `json:"destination"`
	DestinationCity    string `json:"destinationCity,omitempty"`
	DestinationCountry string `json:"destinationCountry,omitempty"`

	MarketingFlight string `json:"marketingFlight,omitempty"`
	OperatingFlight string `json:"operatingFlight,omitempty"`
	BookingClass    string `json:"bookingClass,omitempty"`
	CabinBooked     string `json:"cabinBooked"`
	CabinFlown      string `json:"cabinFlown"`
	Upgraded        bool   `json:"upgraded"`

	DistanceMiles          *int     `json:"distanceMiles"`
	EstimatedDurationHours *float64 `json:"estimatedDurationHours"`
	International          bool     `json:"international"`

	EQM        int     `json:"eqm"`
	EQS        float64 `json:"eqs"`
	EQD        float64 `json:"eqd"`
	BaseMiles  int     `json:"baseMiles"`
	BonusMiles int     `json:"bonusMiles"`

	Source      Source      `json:"source"`
	DataQuality DataQuality `json:"dataQuality"`
}

// Distance returns the distance in miles, or 0 when unknown
func (f *FlightRecord) Distance() int {
	if f.DistanceMiles == nil {
		return 0
	}
	return *f.DistanceMiles
}

// Duration returns the estimated duration in hours, or 0 when unknown
func (f *FlightRecord) Duration() float64 {
	if f.EstimatedDurationHours == nil {
		return 0
	}
	return *f.EstimatedDurationHours
}

// EarnedMiles is base plus bonus award miles
func (f *FlightRecord) EarnedMiles() int {
	return f.BaseMiles + f.BonusMiles
}

// IsPremium reports whether the flown cabin is First or Business
func (f *FlightRecord) IsPremium() bool {
	return f.CabinFlown == CabinFirst || f.CabinFlown == CabinBusiness
}

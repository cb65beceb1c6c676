package entity

// Miles transaction types
const (
	MilesEarning    = "earning"
	MilesRedemption = "redemption"
)

// RawMilesActivity is one flight-linked entry from the loyalty activity ledger
type RawMilesActivity struct {
	DepartureDate string  `json:"departureDate" bson:"departureDate"`
	Origin        string  `json:"origin" bson:"origin"`
	Destination   string  `json:"destination" bson:"destination"`
	Airline       string  `json:"airline" bson:"airline"`
	FlightNumber  string  `json:"flightNumber" bson:"flightNumber"`
	FareClass     string  `json:"fareClass" bson:"fareClass"`
	TicketNumber  string  `json:"ticketNumber,omitempty" bson:"ticketNumber,omitempty"`
	PostedDate    string  `json:"postedDate,omitempty" bson:"postedDate,omitempty"`
	EQM           int     `json:"eqm" bson:"eqm"`
	EQS           float64 `json:"eqs" bson:"eqs"`
	EQD           float64 `json:"eqd" bson:"eqd"`
	BaseMiles     int     `json:"baseMiles" bson:"baseMiles"`
	BonusMiles    int     `json:"bonusMiles" bson:"bonusMiles"`
}

// PartnerActivity is a non-flight earning entry (credit cards, hotels, cars ...)
type PartnerActivity struct {
	ActivityDate string  `json:"activityDate" bson:"activityDate"`
	PostedDate   string  `json:"postedDate" bson:"postedDate"`
	Description  string  `json:"description" bson:"description"`
	BaseMiles    int     `json:"baseMiles" bson:"baseMiles"`
	BonusMiles   int     `json:"bonusMiles" bson:"bonusMiles"`
	EQD          float64 `json:"eqd" bson:"eqd"`
}

// Redemption is a miles redemption entry
type Redemption struct {
	Date          string `json:"date" bson:"date"`
	Description   string `json:"description" bson:"description"`
	MilesRedeemed int    `json:"milesRedeemed" bson:"milesRedeemed"`
}

// MilesTransaction is a normalized non-flight miles ledger entry.
// TotalMiles is negative for redemptions.
type MilesTransaction struct {
	Date        string  `json:"date"`
	PostedDate  string  `json:"postedDate,omitempty"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	BaseMiles   int     `json:"baseMiles"`
	BonusMiles  int     `json:"bonusMiles"`
	TotalMiles  int     `json:"totalMiles"`
	EQD         float64 `json:"eqd"`
}

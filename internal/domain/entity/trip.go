package entity

// Trip is a multi-leg journey detected from adjacent ledger entries
type Trip struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Via         []string  `json:"via"`
	Legs        int       `json:"legs"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Segments    []TripLeg `json:"segments"`
}

// TripLeg is one ledger entry inside a trip
type TripLeg struct {
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime,omitempty"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Flight        string `json:"flight,omitempty"`
}

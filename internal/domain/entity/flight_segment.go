// internal/domain/entity/flight_segment.go
package entity

// RawFlightSegment is one flown or booked leg from the itinerary (PNR) export
type RawFlightSegment struct {
	PNR             string `json:"pnr" bson:"pnr"`
	BookingDate     string `json:"bookingDate" bson:"bookingDate"`
	DepartureDate   string `json:"departureDate" bson:"departureDate"`
	DepartureTime   string `json:"departureTime" bson:"departureTime"`
	ArrivalDate     string `json:"arrivalDate" bson:"arrivalDate"`
	ArrivalTime     string `json:"arrivalTime" bson:"arrivalTime"`
	Origin          string `json:"origin" bson:"origin"`
	Destination     string `json:"destination" bson:"destination"`
	MarketingFlight string `json:"marketingFlight" bson:"marketingFlight"`
	OperatingFlight string `json:"operatingFlight" bson:"operatingFlight"`
	BookingClass    string `json:"bookingClass" bson:"bookingClass"`
	CabinCode       string `json:"cabinCode" bson:"cabinCode"`
	Status          string `json:"status" bson:"status"` // HK, TK, RR, SS ...
	Canceled        bool   `json:"canceled" bson:"canceled"`
}

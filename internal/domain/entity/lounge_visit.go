package entity

import "strings"

// LoungeVisit is one lounge registration from the club export
type LoungeVisit struct {
	LocationCode         string `json:"locationCode" bson:"locationCode"`
	LoungeType           string `json:"loungeType" bson:"loungeType"`
	Timestamp            string `json:"timestamp" bson:"timestamp"`
	Guests               int    `json:"guests" bson:"guests"`
	RegistrationCategory string `json:"registrationCategory" bson:"registrationCategory"`
	Tier                 string `json:"tier" bson:"tier"`
	PNR                  string `json:"pnr" bson:"pnr"`
	FlightNumber         string `json:"flightNumber" bson:"flightNumber"`
	CabinCode            string `json:"cabinCode" bson:"cabinCode"`
	Origin               string `json:"origin" bson:"origin"`
	Destination          string `json:"destination" bson:"destination"`
	International        bool   `json:"international" bson:"international"`
	DiningEligible       bool   `json:"diningEligible" bson:"diningEligible"`
	DiningUsed           bool   `json:"diningUsed" bson:"diningUsed"`
	FlagshipEligible     bool   `json:"flagshipEligible" bson:"flagshipEligible"`
	FlagshipUsed         bool   `json:"flagshipUsed" bson:"flagshipUsed"`
}

// AirportCode is the airport part of the location code, e.g. "DFW" for "DFW-C"
func (v *LoungeVisit) AirportCode() string {
	code, _, _ := strings.Cut(strings.TrimSpace(v.LocationCode), "-")
	return strings.ToUpper(code)
}

// Date is the calendar date part of the registration timestamp
func (v *LoungeVisit) Date() string {
	ts := strings.TrimSpace(v.Timestamp)
	if i := strings.IndexAny(ts, " T"); i >= 0 {
		return ts[:i]
	}
	return ts
}

// IsFlagship reports whether the visit was to a Flagship lounge
func (v *LoungeVisit) IsFlagship() bool {
	return strings.Contains(v.LoungeType, "Flagship")
}

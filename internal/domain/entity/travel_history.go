// internal/domain/entity/travel_history.go
package entity

import "time"

// TravelHistory is one complete, already-parsed export batch. Everything the
// report needs is resident here before computation starts.
type TravelHistory struct {
	ExportID        string             `json:"exportId" bson:"exportId"`
	Segments        []RawFlightSegment `json:"segments" bson:"segments"`
	FlightActivity  []RawMilesActivity `json:"flightActivity" bson:"flightActivity"`
	PartnerActivity []PartnerActivity  `json:"partnerActivity" bson:"partnerActivity"`
	Redemptions     []Redemption       `json:"redemptions" bson:"redemptions"`
	LoungeVisits    []LoungeVisit      `json:"loungeVisits" bson:"loungeVisits"`
	SWUCertificates []SWUCertificate   `json:"swuCertificates" bson:"swuCertificates"`
	Profile         *Profile           `json:"profile,omitempty" bson:"profile,omitempty"`
	ImportedAt      time.Time          `json:"importedAt,omitempty" bson:"importedAt"`
}

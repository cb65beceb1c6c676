package entity

// Profile holds member information from the account profile export
type Profile struct {
	LoyaltyNumber     string      `json:"loyaltyNumber" bson:"loyaltyNumber"`
	StatusTier        string      `json:"statusTier" bson:"statusTier"`
	MillionMilerLevel string      `json:"millionMilerLevel" bson:"millionMilerLevel"`
	AccountStatus     string      `json:"accountStatus" bson:"accountStatus"`
	SeatPreference    string      `json:"seatPreference" bson:"seatPreference"`
	HomeAirport       string      `json:"homeAirport" bson:"homeAirport"`
	FirstName         string      `json:"firstName" bson:"firstName"`
	LastName          string      `json:"lastName" bson:"lastName"`
	Companions        []Companion `json:"companions,omitempty" bson:"companions,omitempty"`
}

// Companion is a saved travel companion
type Companion struct {
	FirstName     string `json:"firstName" bson:"firstName"`
	LastName      string `json:"lastName" bson:"lastName"`
	LoyaltyNumber string `json:"loyaltyNumber" bson:"loyaltyNumber"`
}

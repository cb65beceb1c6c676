package entity

// Airport represents directory information for an airport, keyed by IATA code
type Airport struct {
	Code      string   `json:"code" bson:"code"`
	Name      string   `json:"name" bson:"name"`
	City      string   `json:"city" bson:"city"`
	Country   string   `json:"country" bson:"country"`
	Latitude  *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty" bson:"lon,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are known
func (a *Airport) HasCoordinates() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}

package entity

// YearStats aggregates one calendar year of flights and miles activity
type YearStats struct {
	Year               string  `json:"year"`
	Flights            int     `json:"flights"`
	DistanceMiles      int     `json:"distanceMiles"`
	EstimatedHours     float64 `json:"estimatedHours"`
	EQM                int     `json:"eqm"`
	EQS                float64 `json:"eqs"`
	EQD                float64 `json:"eqd"`
	MilesEarnedFlights int     `json:"milesEarnedFlights"`
	MilesEarnedPartner int     `json:"milesEarnedPartner"`
	MilesRedeemed      int     `json:"milesRedeemed"`
	EarnedMiles        int     `json:"earnedMiles"`
	International      int     `json:"internationalFlights"`
	Domestic           int     `json:"domesticFlights"`
	Upgrades           int     `json:"upgrades"`
	UniqueAirports     int     `json:"uniqueAirports"`
	UniqueCountries    int     `json:"uniqueCountries"`
}

// PeriodCount is a flight count for a labelled period (month, quarter, weekday ...)
type PeriodCount struct {
	Period        string `json:"period"`
	Flights       int    `json:"flights"`
	DistanceMiles int    `json:"distanceMiles"`
}

// MetricDelta is a year-over-year change. PercentChange is nil when the
// previous value is zero.
type MetricDelta struct {
	Current       float64  `json:"current"`
	Previous      float64  `json:"previous"`
	Change        float64  `json:"change"`
	PercentChange *float64 `json:"percentChange"`
}

// YearComparison compares a year against the one before it
type YearComparison struct {
	Year           string      `json:"year"`
	PreviousYear   string      `json:"previousYear"`
	Flights        MetricDelta `json:"flights"`
	DistanceMiles  MetricDelta `json:"distanceMiles"`
	EQM            MetricDelta `json:"eqm"`
	EQD            MetricDelta `json:"eqd"`
	EarnedMiles    MetricDelta `json:"earnedMiles"`
	International  MetricDelta `json:"international"`
	UniqueAirports MetricDelta `json:"uniqueAirports"`
}

// TemporalStats groups the ledger by calendar periods
type TemporalStats struct {
	Annual           []YearStats      `json:"annual"`
	Monthly          []PeriodCount    `json:"monthly"`
	ByCalendarMonth  []PeriodCount    `json:"byCalendarMonth"`
	ByQuarter        []PeriodCount    `json:"byQuarter"`
	ByDayOfWeek      []PeriodCount    `json:"byDayOfWeek"`
	YearOverYear     []YearComparison `json:"yearOverYear"`
	BusiestYear      string           `json:"busiestYear,omitempty"`
	QuietestYear     string           `json:"quietestYear,omitempty"`
	BusiestMonth     string           `json:"busiestMonth,omitempty"`
	BusiestDayOfWeek string           `json:"busiestDayOfWeek,omitempty"`
}

package entity

// DataQualityBreakdown counts ledger entries per data quality level
type DataQualityBreakdown struct {
	FullRecords    int     `json:"fullRecords"`
	PartialRecords int     `json:"partialRecords"`
	PNROnlyRecords int     `json:"pnrOnlyRecords"`
	FullPercentage float64 `json:"fullPercentage"`
}

// LifetimeStats holds whole-history totals
type LifetimeStats struct {
	TotalFlights            int                  `json:"totalFlights"`
	TotalDistanceMiles      int                  `json:"totalDistanceMiles"`
	TotalEstimatedHours     float64              `json:"totalEstimatedHours"`
	TotalEstimatedDays      float64              `json:"totalEstimatedDays"`
	UniqueAirports          int                  `json:"uniqueAirports"`
	UniqueCountries         int                  `json:"uniqueCountries"`
	UniqueAirlines          int                  `json:"uniqueAirlines"`
	Airports                []string             `json:"airports"`
	Countries               []string             `json:"countries"`
	Airlines                []string             `json:"airlines"`
	InternationalFlights    int                  `json:"internationalFlights"`
	DomesticFlights         int                  `json:"domesticFlights"`
	InternationalRatio      float64              `json:"internationalRatio"`
	MilesEarnedFromFlights  int                  `json:"milesEarnedFromFlights"`
	MilesEarnedFromPartners int                  `json:"milesEarnedFromPartners"`
	TotalMilesEarned        int                  `json:"totalMilesEarned"`
	MilesRedeemed           int                  `json:"milesRedeemed"`
	CabinDistribution       map[string]int       `json:"cabinDistribution"`
	UpgradesReceived        int                  `json:"upgradesReceived"`
	UpgradeRate             float64              `json:"upgradeRate"`
	LoungeVisits            int                  `json:"loungeVisits"`
	CurrentStatus           string               `json:"currentStatus,omitempty"`
	MillionMilerLevel       string               `json:"millionMilerLevel,omitempty"`
	AverageFlightDistance   int                  `json:"averageFlightDistance"`
	AverageFlightDuration   float64              `json:"averageFlightDuration"`
	DataQuality             DataQualityBreakdown `json:"dataQuality"`
}

// RouteCount is a count keyed by an undirected city pair or route label
type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// DirectionalRoute is a count for an origin to destination route
type DirectionalRoute struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// HubUsage counts flights touching configured hub airports
type HubUsage struct {
	TotalHubFlights int            `json:"totalHubFlights"`
	HubPercentage   float64        `json:"hubPercentage"`
	ByHub           map[string]int `json:"byHub"`
}

// FlightRef points at a single ledger entry by route and date
type FlightRef struct {
	Route         string `json:"route"`
	DistanceMiles int    `json:"distanceMiles"`
	Date          string `json:"date"`
}

// DistanceStats summarizes flight distances
type DistanceStats struct {
	Average  int        `json:"average"`
	Median   int        `json:"median"`
	Longest  *FlightRef `json:"longest"`
	Shortest *FlightRef `json:"shortest"`
}

// RouteStats ranks routes and airports
type RouteStats struct {
	TopCityPairs         []RouteCount       `json:"topCityPairs"`
	TopDirectionalRoutes []DirectionalRoute `json:"topDirectionalRoutes"`
	MostVisitedAirports  []AirportCount     `json:"mostVisitedAirports"`
	HubUsage             HubUsage           `json:"hubUsage"`
	DistanceStats        DistanceStats      `json:"distanceStats"`
	MostFrequentRoute    *RouteCount        `json:"mostFrequentRoute"`
}

// CarrierCount is a flight count per airline code
type CarrierCount struct {
	Airline string `json:"airline"`
	Flights int    `json:"flights"`
}

// PartnerStats describes marketing versus operating carriers
type PartnerStats struct {
	ByMarketingCarrier []CarrierCount `json:"byMarketingCarrier"`
	ByOperatingCarrier []CarrierCount `json:"byOperatingCarrier"`
	CodeshareFlights   int            `json:"codeshareFlights"`
	CodeshareRate      float64        `json:"codeshareRate"`
}

// MilestoneFlight is a notable "first" in the ledger
type MilestoneFlight struct {
	Route              string `json:"route"`
	Date               string `json:"date"`
	DestinationCountry string `json:"destinationCountry,omitempty"`
	Cabin              string `json:"cabin,omitempty"`
}

// DistanceMilestone marks the flight on which cumulative distance crossed Miles
type DistanceMilestone struct {
	Miles  int    `json:"miles"`
	Date   string `json:"date"`
	Flight string `json:"flight"`
}

// NewAirport marks the first visit to an airport
type NewAirport struct {
	Airport string `json:"airport"`
	Date    string `json:"date"`
	Number  int    `json:"number"`
}

// Milestones collects firsts and cumulative markers
type Milestones struct {
	FirstFlight         *MilestoneFlight    `json:"firstFlight"`
	FirstInternational  *MilestoneFlight    `json:"firstInternational"`
	FirstPremiumCabin   *MilestoneFlight    `json:"firstPremiumCabin"`
	DistanceMilestones  []DistanceMilestone `json:"distanceMilestones"`
	NewAirportsTimeline []NewAirport        `json:"newAirportsTimeline"`
	TotalAirports       int                 `json:"totalAirports"`
}

// CategoryMiles is a miles total per transaction category
type CategoryMiles struct {
	Category string `json:"category"`
	Miles    int    `json:"miles"`
}

// SWUStats summarizes systemwide upgrade certificates
type SWUStats struct {
	TotalEarned        int     `json:"totalEarned"`
	TotalUsed          int     `json:"totalUsed"`
	TotalExpired       int     `json:"totalExpired"`
	CurrentlyAvailable int     `json:"currentlyAvailable"`
	UseRate            float64 `json:"useRate"`
}

// LoyaltyStats summarizes program activity
type LoyaltyStats struct {
	TotalEQM              int             `json:"totalEqm"`
	TotalEQS              float64         `json:"totalEqs"`
	TotalEQD              float64         `json:"totalEqd"`
	CurrentStatus         string          `json:"currentStatus,omitempty"`
	MillionMilerLevel     string          `json:"millionMilerLevel,omitempty"`
	FlightBaseMiles       int             `json:"flightBaseMiles"`
	FlightBonusMiles      int             `json:"flightBonusMiles"`
	TotalFlightMiles      int             `json:"totalFlightMiles"`
	EarningsByCategory    []CategoryMiles `json:"earningsByCategory"`
	RedemptionsTotal      int             `json:"redemptionsTotal"`
	RedemptionsByCategory []CategoryMiles `json:"redemptionsByCategory"`
	SWU                   SWUStats        `json:"swu"`
	DetectedUpgrades      int             `json:"detectedUpgrades"`
	CabinDistribution     map[string]int  `json:"cabinDistribution"`
}

// UseRate counts how often an eligible benefit was used
type UseRate struct {
	TimesEligible int     `json:"timesEligible"`
	TimesUsed     int     `json:"timesUsed"`
	UseRate       float64 `json:"useRate"`
}

// LoungeStats summarizes lounge usage
type LoungeStats struct {
	TotalVisits        int            `json:"totalVisits"`
	ByAirport          []AirportCount `json:"byAirport"`
	ByLoungeType       map[string]int `json:"byLoungeType"`
	ByYear             map[string]int `json:"byYear"`
	Dining             UseRate        `json:"dining"`
	Flagship           UseRate        `json:"flagship"`
	TotalGuestsBrought int            `json:"totalGuestsBrought"`
	AveragePartySize   float64        `json:"averagePartySize"`
}

package entity

// Tier is an elite status level
type Tier string

const (
	TierMember            Tier = "Member"
	TierGold              Tier = "Gold"
	TierPlatinum          Tier = "Platinum"
	TierPlatinumPro       Tier = "Platinum Pro"
	TierExecutivePlatinum Tier = "Executive Platinum"
)

// TierProgress is the distance from a year's totals to the next tier
type TierProgress struct {
	NextTier    Tier    `json:"nextTier"`
	EQMNeeded   int     `json:"eqmNeeded"`
	EQDNeeded   float64 `json:"eqdNeeded"`
	EQMProgress int     `json:"eqmProgress"`
	EQDProgress int     `json:"eqdProgress"`
	Percent     int     `json:"percent"`
}

// StatusYear is the tier inferred from one year's qualifying activity.
// Status earned in Year is enjoyed in YearEnjoyed.
type StatusYear struct {
	Year        int           `json:"yearEarned"`
	YearEnjoyed int           `json:"yearEnjoyed"`
	Tier        Tier          `json:"status"`
	QualifiedBy string        `json:"qualifiedBy,omitempty"`
	EQM         int           `json:"eqm"`
	EQD         float64       `json:"eqd"`
	EQS         float64       `json:"eqs"`
	Progress    *TierProgress `json:"progressToNext"`
}

// MillionMilerMilestone records when a lifetime level was crossed
type MillionMilerMilestone struct {
	Level    int    `json:"level"`
	Date     string `json:"date"`
	Flight   string `json:"flight"`
	TotalEQM int    `json:"totalEqm"`
}

// MillionMilerMonth is one month of the cumulative EQM timeline
type MillionMilerMonth struct {
	Month         string `json:"month"`
	MonthlyEQM    int    `json:"monthlyEqm"`
	CumulativeEQM int    `json:"cumulativeEqm"`
	Level         int    `json:"level"`
}

// MillionMilerProgress tracks lifetime qualifying miles
type MillionMilerProgress struct {
	CurrentLevel         int                     `json:"currentLevel"`
	TotalLifetimeEQM     int                     `json:"totalLifetimeEqm"`
	ProgressCurrent      int                     `json:"progressCurrent"`
	ProgressNeeded       int                     `json:"progressNeeded"`
	ProgressPercent      int                     `json:"progressPercent"`
	Milestones           []MillionMilerMilestone `json:"milestones"`
	Timeline             []MillionMilerMonth     `json:"timeline"`
	TrailingYearsEQM     int                     `json:"trailingYearsEqm"`
	ProjectedYearsToNext *float64                `json:"projectedYearsToNext"`
}

// MonthAverage is the average flight count for a calendar month
type MonthAverage struct {
	Month      string  `json:"month"`
	AvgFlights float64 `json:"avgFlights"`
}

// RecurringPattern is an undirected route flown in the same month across years
type RecurringPattern struct {
	Month         string   `json:"month"`
	Route         string   `json:"route"`
	YearsAppeared int      `json:"yearsAppeared"`
	Years         []string `json:"years"`
}

// SeasonalPatterns describes month-of-year behavior
type SeasonalPatterns struct {
	Insufficient          bool               `json:"insufficient"`
	YearsObserved         int                `json:"yearsObserved"`
	MonthlyAverageFlights []MonthAverage     `json:"monthlyAverageFlights"`
	MeanFlightsPerMonth   float64            `json:"meanFlightsPerMonth"`
	PeakMonths            []MonthAverage     `json:"peakTravelMonths"`
	LowMonths             []MonthAverage     `json:"lowTravelMonths"`
	RecurringPatterns     []RecurringPattern `json:"recurringPatterns"`
	QuarterDistribution   []PeriodCount      `json:"quarterDistribution"`
	HasPeak               bool               `json:"hasPeak"`
	HasRecurring          bool               `json:"hasRecurring"`
	TopRecurring          *RecurringPattern  `json:"topRecurring"`
}

// Flight volume buckets
const (
	VolumeLow      = "low"
	VolumeModerate = "moderate"
	VolumeHigh     = "high"
)

// EraCharacteristics summarizes travel behavior for a year or a merged era
type EraCharacteristics struct {
	FlightVolume string `json:"flightVolume"`
	AvgDistance  int    `json:"avgDistance"`
	TopAirport   string `json:"topAirport,omitempty"`
	TopRoute     string `json:"topRoute,omitempty"`
	PremiumRatio int    `json:"premiumRatio"`
	IntlRatio    int    `json:"intlRatio"`
}

// TravelEra is a contiguous span of years with stable characteristics
type TravelEra struct {
	StartYear         int                `json:"startYear"`
	EndYear           int                `json:"endYear"`
	DurationYears     int                `json:"duration"`
	Characteristics   EraCharacteristics `json:"characteristics"`
	AvgFlightsPerYear int                `json:"avgFlightsPerYear"`
	Descriptors       []string           `json:"descriptors"`
	Label             string             `json:"name"`
	ChangeReasons     []string           `json:"changeReasons,omitempty"`
}

// TravelEras is the era segmentation of the ledger
type TravelEras struct {
	Insufficient bool        `json:"insufficient"`
	Eras         []TravelEra `json:"eras"`
	TotalEras    int         `json:"totalEras"`
}

// Connection is a pair of consecutive flights through one airport
type Connection struct {
	Date              string `json:"date"`
	Origin            string `json:"origin"`
	ConnectionAirport string `json:"connectionAirport"`
	Destination       string `json:"destination"`
	FullRoute         string `json:"fullRoute"`
}

// AirportCount is a count keyed by airport
type AirportCount struct {
	Airport string `json:"airport"`
	Count   int    `json:"count"`
}

// ConnectionRate summarizes connecting versus direct flying
type ConnectionRate struct {
	TotalConnections       int            `json:"totalConnections"`
	TotalDirectFlights     int            `json:"totalDirectFlights"`
	TotalConnectingFlights int            `json:"totalConnectingFlights"`
	ConnectionRate         int            `json:"connectionRate"`
	TopConnectionAirports  []AirportCount `json:"topConnectionAirports"`
	FavoriteConnectionHub  string         `json:"favoriteConnectionHub,omitempty"`
	RecentConnections      []Connection   `json:"recentConnections"`
}

// FareClassEfficiency is the award miles earning rate for one booking class
type FareClassEfficiency struct {
	FareClass       string  `json:"fareClass"`
	Flights         int     `json:"flights"`
	TotalDistance   int     `json:"totalDistance"`
	TotalBaseMiles  int     `json:"totalBaseMiles"`
	TotalBonusMiles int     `json:"totalBonusMiles"`
	EarningRate     float64 `json:"earningRate"`
}

// MilesEfficiency summarizes award miles earned per mile flown
type MilesEfficiency struct {
	OverallEarningRate      float64               `json:"overallEarningRate"`
	TotalFlightMilesEarned  int                   `json:"totalFlightMilesEarned"`
	TotalPartnerMilesEarned int                   `json:"totalPartnerMilesEarned"`
	TotalMilesRedeemed      int                   `json:"totalMilesRedeemed"`
	NetMilesBalance         int                   `json:"netMilesBalance"`
	ByFareClass             []FareClassEfficiency `json:"byFareClass"`
	BonusRatio              int                   `json:"bonusRatio"`
}

// LoungeYearValue is the estimated lounge value for one year
type LoungeYearValue struct {
	Year           string `json:"year"`
	Visits         int    `json:"visits"`
	Guests         int    `json:"guests"`
	FlagshipVisits int    `json:"flagshipVisits"`
	DiningEligible int    `json:"diningEligible"`
	EstimatedValue int    `json:"estimatedValue"`
	ValuePerVisit  int    `json:"valuePerVisit"`
}

// LoungeROI estimates whether lounge membership pays off
type LoungeROI struct {
	Insufficient        bool              `json:"insufficient"`
	TotalVisits         int               `json:"totalVisits"`
	TotalEstimatedValue int               `json:"totalEstimatedValue"`
	AvgVisitsPerYear    float64           `json:"avgVisitsPerYear"`
	AvgValuePerVisit    int               `json:"avgValuePerVisit"`
	YearlyBreakdown     []LoungeYearValue `json:"yearlyBreakdown"`
	MembershipPaysOff   bool              `json:"membershipPaysOff"`
}

// BookerProfile classifies booking behavior
type BookerProfile string

const (
	BookerSpontaneous BookerProfile = "spontaneous"
	BookerPlanner     BookerProfile = "planner"
	BookerAverage     BookerProfile = "average"
)

// LeadTimeBucket is one histogram bin of booking lead times
type LeadTimeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BookingLeadTime describes how far ahead flights were booked
type BookingLeadTime struct {
	Insufficient          bool             `json:"insufficient"`
	TotalBookingsAnalyzed int              `json:"totalBookingsAnalyzed"`
	DiscardedLeadTimes    int              `json:"discardedLeadTimes"`
	AverageLeadDays       *int             `json:"averageLeadDays"`
	MedianLeadDays        *int             `json:"medianLeadDays"`
	MinLeadDays           *int             `json:"minLeadDays"`
	MaxLeadDays           *int             `json:"maxLeadDays"`
	Distribution          []LeadTimeBucket `json:"distribution"`
	DomesticAverage       *int             `json:"domesticAverage"`
	InternationalAverage  *int             `json:"internationalAverage"`
	LastMinuteBookings    int              `json:"lastMinuteBookings"`
	AdvancePlanners       int              `json:"advancePlanners"`
	Profile               BookerProfile    `json:"profile,omitempty"`
}

// PatternResults collects every pattern engine analysis
type PatternResults struct {
	StatusHistory   []StatusYear         `json:"statusHistory"`
	MillionMiler    MillionMilerProgress `json:"millionMiler"`
	Seasonal        SeasonalPatterns     `json:"seasonalPatterns"`
	TravelEras      TravelEras           `json:"travelEras"`
	Connections     ConnectionRate       `json:"connections"`
	MilesEfficiency MilesEfficiency      `json:"milesEfficiency"`
	LoungeROI       LoungeROI            `json:"loungeROI"`
	BookingPatterns BookingLeadTime      `json:"bookingPatterns"`
}

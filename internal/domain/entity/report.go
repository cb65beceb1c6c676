// internal/domain/entity/report.go
package entity

import "time"

// MergeStats counts how merge inputs were resolved
type MergeStats struct {
	Both             int `json:"both"`
	PNROnly          int `json:"pnrOnly"`
	ActivityOnly     int `json:"activityOnly"`
	SkippedCanceled  int `json:"skippedCanceled"`
	SkippedDuplicate int `json:"skippedDuplicate"`
}

// ReportMetadata identifies a report and the ledger it was built from.
// GeneratedAt is the only field that differs between runs over identical input.
type ReportMetadata struct {
	ReportID          string     `json:"reportId"`
	ExportID          string     `json:"exportId,omitempty"`
	GeneratedAt       time.Time  `json:"generatedAt"`
	Version           string     `json:"version"`
	FlightCount       int        `json:"flightCount"`
	FirstDate         string     `json:"firstDate,omitempty"`
	LastDate          string     `json:"lastDate,omitempty"`
	YearsSpan         int        `json:"yearsSpan"`
	LedgerFingerprint string     `json:"ledgerFingerprint"`
	Merge             MergeStats `json:"merge"`
}

// Report is the complete analytics output for one travel history
type Report struct {
	Metadata    ReportMetadata     `json:"metadata"`
	Profile     *Profile           `json:"profile"`
	Ledger      []FlightRecord     `json:"ledger"`
	Miles       []MilesTransaction `json:"milesTransactions"`
	Lifetime    LifetimeStats      `json:"lifetime"`
	Routes      RouteStats         `json:"routes"`
	Partners    PartnerStats       `json:"partners"`
	Milestones  Milestones         `json:"milestones"`
	Loyalty     LoyaltyStats       `json:"loyalty"`
	Lounges     LoungeStats        `json:"lounges"`
	Trips       []Trip             `json:"trips"`
	Temporal    TemporalStats      `json:"temporal"`
	Patterns    PatternResults     `json:"patterns"`
	Annotations []Annotation       `json:"annotations"`
}

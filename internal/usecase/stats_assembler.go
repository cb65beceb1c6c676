package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/logger"
	"travel-ledger-service/pkg/utils"

	"github.com/google/uuid"
)

// Namespace for report ids derived from ledger fingerprints
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("travel-ledger-service/report"))

// AssemblerOptions configures report assembly
type AssemblerOptions struct {
	Version string
	Hubs    []string
	// Clock stamps generatedAt; defaults to time.Now in UTC
	Clock func() time.Time
}

// StatsAssembler turns one travel history into a complete report
type StatsAssembler struct {
	merger   *MergeEngine
	patterns *PatternEngine
	opts     AssemblerOptions
	logger   logger.Logger
}

// NewStatsAssembler creates a new stats assembler
func NewStatsAssembler(merger *MergeEngine, patterns *PatternEngine, opts AssemblerOptions, logger logger.Logger) *StatsAssembler {
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &StatsAssembler{
		merger:   merger,
		patterns: patterns,
		opts:     opts,
		logger:   logger,
	}
}

// Assemble merges the history into a ledger and runs every analysis over it.
// Identical histories give identical reports apart from generatedAt.
func (a *StatsAssembler) Assemble(ctx context.Context, history *entity.TravelHistory) (*entity.Report, error) {
	if history == nil {
		history = &entity.TravelHistory{}
	}

	merged := a.merger.Merge(history.Segments, history.FlightActivity)
	ledger := merged.Ledger
	miles := NormalizeMilesTransactions(history.PartnerActivity, history.Redemptions)

	patterns, err := a.patterns.Run(ctx, PatternInput{
		Ledger:       ledger,
		Miles:        miles,
		LoungeVisits: history.LoungeVisits,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run pattern analyses: %w", err)
	}

	notes := newAnnotationSet()
	notes.addAll(merged.Annotations)
	notes.addAll(insufficientAnnotations(patterns))

	metadata, err := a.metadata(history.ExportID, ledger)
	if err != nil {
		return nil, err
	}
	metadata.Merge = merged.Stats

	report := &entity.Report{
		Metadata:    metadata,
		Profile:     history.Profile,
		Ledger:      ledger,
		Miles:       miles,
		Lifetime:    CalculateLifetimeStats(ledger, miles, history.LoungeVisits, history.Profile),
		Routes:      CalculateRouteStats(ledger, a.opts.Hubs),
		Partners:    CalculatePartnerStats(ledger),
		Milestones:  CalculateMilestones(ledger),
		Loyalty:     CalculateLoyaltyStats(ledger, miles, history.SWUCertificates, history.Profile),
		Lounges:     CalculateLoungeStats(history.LoungeVisits),
		Trips:       DetectTrips(ledger),
		Temporal:    Aggregate(ledger, miles),
		Patterns:    patterns,
		Annotations: notes.list(),
	}

	a.logger.Info("Report assembled",
		"exportId", history.ExportID,
		"reportId", metadata.ReportID,
		"flights", metadata.FlightCount,
		"trips", len(report.Trips),
		"annotations", len(report.Annotations))

	return report, nil
}

func (a *StatsAssembler) metadata(exportID string, ledger []entity.FlightRecord) (entity.ReportMetadata, error) {
	fingerprint, err := ledgerFingerprint(ledger)
	if err != nil {
		return entity.ReportMetadata{}, err
	}

	meta := entity.ReportMetadata{
		ReportID:          uuid.NewSHA1(reportNamespace, []byte(fingerprint)).String(),
		ExportID:          exportID,
		GeneratedAt:       a.opts.Clock(),
		Version:           a.opts.Version,
		FlightCount:       len(ledger),
		LedgerFingerprint: fingerprint,
	}

	flown := datedFlights(ledger)
	if len(flown) > 0 {
		meta.FirstDate = flown[0].DepartureDate
		meta.LastDate = flown[len(flown)-1].DepartureDate
		first, _ := utils.ParseDate(meta.FirstDate)
		last, _ := utils.ParseDate(meta.LastDate)
		meta.YearsSpan = last.Year() - first.Year() + 1
	}
	return meta, nil
}

// ledgerFingerprint is the hex SHA-256 of the ledger's JSON encoding
func ledgerFingerprint(ledger []entity.FlightRecord) (string, error) {
	data, err := json.Marshal(ledger)
	if err != nil {
		return "", fmt.Errorf("failed to encode ledger: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

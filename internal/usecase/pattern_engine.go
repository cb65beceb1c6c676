package usecase

import (
	"context"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// PatternInput is the read-only snapshot every pattern analysis works from
type PatternInput struct {
	Ledger       []entity.FlightRecord
	Miles        []entity.MilesTransaction
	LoungeVisits []entity.LoungeVisit
	// AsOfYear anchors the million miler projection; zero means the latest ledger year
	AsOfYear int
}

// PatternEngine runs the independent pattern analyses concurrently
type PatternEngine struct {
	workers int
	logger  logger.Logger
}

// NewPatternEngine creates a pattern engine running at most workers analyses at once
func NewPatternEngine(workers int, logger logger.Logger) *PatternEngine {
	if workers < 1 {
		workers = 1
	}
	return &PatternEngine{
		workers: workers,
		logger:  logger,
	}
}

// Run executes every analysis. Each one writes its own result field, so the
// output does not depend on scheduling. The only error is ctx cancellation.
func (e *PatternEngine) Run(ctx context.Context, in PatternInput) (entity.PatternResults, error) {
	var results entity.PatternResults
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	run := func(name string, fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			e.logger.Debug("Pattern analysis finished", "analysis", name)
			return nil
		})
	}

	run("status_history", func() { results.StatusHistory = InferStatusHistory(in.Ledger) })
	run("million_miler", func() { results.MillionMiler = MillionMilerProgress(in.Ledger, in.AsOfYear) })
	run("seasonal", func() { results.Seasonal = DetectSeasonalPatterns(in.Ledger) })
	run("travel_eras", func() { results.TravelEras = DetectTravelEras(in.Ledger) })
	run("connections", func() { results.Connections = AnalyzeConnectionRate(in.Ledger) })
	run("miles_efficiency", func() { results.MilesEfficiency = AnalyzeMilesEfficiency(in.Ledger, in.Miles) })
	run("lounge_roi", func() { results.LoungeROI = CalculateLoungeROI(in.LoungeVisits) })
	run("booking_patterns", func() { results.BookingPatterns = AnalyzeBookingLeadTime(in.Ledger) })

	if err := g.Wait(); err != nil {
		return entity.PatternResults{}, err
	}

	e.logger.Debug("Pattern engine finished", "duration", time.Since(start))
	return results, nil
}

// insufficientAnnotations flags every analysis that had too little input
func insufficientAnnotations(r entity.PatternResults) []entity.Annotation {
	var out []entity.Annotation
	flag := func(insufficient bool, subject, detail string) {
		if insufficient {
			out = append(out, entity.Annotation{Kind: entity.InsufficientData, Subject: subject, Detail: detail, Count: 1})
		}
	}
	flag(r.Seasonal.Insufficient, "seasonalPatterns", "no dated flights")
	flag(r.TravelEras.Insufficient, "travelEras", "fewer than 20 dated flights")
	flag(r.LoungeROI.Insufficient, "loungeROI", "no lounge visits")
	flag(r.BookingPatterns.Insufficient, "bookingPatterns", "no valid booking lead time")
	return out
}

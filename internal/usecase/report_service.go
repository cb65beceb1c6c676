package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"
	"travel-ledger-service/pkg/logger"
	"travel-ledger-service/pkg/metrics"
)

// ReportService builds reports from submitted or stored travel histories
type ReportService struct {
	assembler   *StatsAssembler
	historyRepo repository.HistoryRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewReportService creates a new report service. metrics may be nil.
func NewReportService(
	assembler *StatsAssembler,
	historyRepo repository.HistoryRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ReportService {
	return &ReportService{
		assembler:   assembler,
		historyRepo: historyRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// BuildReport assembles a report for an in-memory history
func (s *ReportService) BuildReport(ctx context.Context, history *entity.TravelHistory) (*entity.Report, error) {
	start := time.Now()

	report, err := s.assembler.Assemble(ctx, history)
	if err != nil {
		s.countError("build_report")
		s.logger.Error("Failed to build report", "error", err)
		return nil, err
	}

	s.record(report, time.Since(start))
	return report, nil
}

// BuildReportForExport loads a stored history and assembles its report
func (s *ReportService) BuildReportForExport(ctx context.Context, exportID string) (*entity.Report, error) {
	if s.historyRepo == nil {
		return nil, repository.ErrHistoryNotFound
	}

	history, err := s.historyRepo.FindByExportID(ctx, exportID)
	if err != nil {
		if !errors.Is(err, repository.ErrHistoryNotFound) {
			s.countError("load_history")
			s.logger.Error("Failed to load travel history", "exportId", exportID, "error", err)
		}
		return nil, fmt.Errorf("failed to load history %s: %w", exportID, err)
	}

	s.logger.Info("Loaded travel history",
		"exportId", exportID,
		"segments", len(history.Segments),
		"activity", len(history.FlightActivity))

	return s.BuildReport(ctx, history)
}

// SaveHistory stores a history so its report can be rebuilt by export id
func (s *ReportService) SaveHistory(ctx context.Context, history *entity.TravelHistory) error {
	if s.historyRepo == nil {
		return errors.New("history storage is not configured")
	}
	if err := s.historyRepo.Upsert(ctx, history); err != nil {
		s.countError("save_history")
		s.logger.Error("Failed to save travel history", "exportId", history.ExportID, "error", err)
		return fmt.Errorf("failed to save history %s: %w", history.ExportID, err)
	}
	s.logger.Info("Saved travel history", "exportId", history.ExportID)
	return nil
}

func (s *ReportService) record(report *entity.Report, elapsed time.Duration) {
	s.logger.Info("Report built",
		"reportId", report.Metadata.ReportID,
		"flights", report.Metadata.FlightCount,
		"duration", elapsed)

	if s.metrics == nil {
		return
	}
	s.metrics.ReportsGenerated.Inc()
	s.metrics.BuildTime.Observe(elapsed.Seconds())
	for i := range report.Ledger {
		s.metrics.LedgerRecords.WithLabelValues(string(report.Ledger[i].Source)).Inc()
	}
	for _, a := range report.Annotations {
		s.metrics.Annotations.WithLabelValues(string(a.Kind)).Add(float64(a.Count))
	}
}

func (s *ReportService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

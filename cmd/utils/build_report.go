package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/infrastructure/config"
	"travel-ledger-service/internal/infrastructure/directory"
	"travel-ledger-service/internal/usecase"
	"travel-ledger-service/pkg/logger"
)

// Builds a report offline from a travel history JSON file and an airport
// directory JSON file, without Mongo or Postgres.
func main() {
	var (
		historyPath  = flag.String("history", "", "travel history JSON file")
		airportsPath = flag.String("airports", "", "airport directory JSON file")
		outPath      = flag.String("out", "", "report output path (default stdout)")
		workers      = flag.Int("workers", 4, "concurrent pattern analyses")
		hubs         = flag.String("hubs", strings.Join(config.DefaultHubAirports, ","), "comma separated hub airports")
		logLevel     = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	if *historyPath == "" || *airportsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewLogger(*logLevel)
	defer log.Sync()

	if err := run(*historyPath, *airportsPath, *outPath, *workers, strings.Split(*hubs, ","), log); err != nil {
		log.Error("Failed to build report", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(historyPath, airportsPath, outPath string, workers int, hubs []string, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	airportFile, err := os.Open(airportsPath)
	if err != nil {
		return fmt.Errorf("failed to open airports: %w", err)
	}
	defer airportFile.Close()

	airports, err := directory.LoadJSON(airportFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(historyPath)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	var history entity.TravelHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return fmt.Errorf("failed to decode history: %w", err)
	}

	for i := range hubs {
		hubs[i] = strings.ToUpper(strings.TrimSpace(hubs[i]))
	}

	assembler := usecase.NewStatsAssembler(
		usecase.NewMergeEngine(airports, log),
		usecase.NewPatternEngine(workers, log),
		usecase.AssemblerOptions{Version: "cli", Hubs: hubs},
		log,
	)
	report, err := usecase.NewReportService(assembler, nil, nil, log).BuildReport(ctx, &history)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("Report written",
		"reportId", report.Metadata.ReportID,
		"flights", report.Metadata.FlightCount,
		"annotations", len(report.Annotations))
	return nil
}

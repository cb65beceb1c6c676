package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"
	"travel-ledger-service/pkg/logger"
)

// Snapshot is an in-memory, read-only airport directory. It is built once
// before merging and never modified afterwards.
type Snapshot struct {
	airports map[string]*entity.Airport
}

// New creates a snapshot from a list of airports. Codes are normalized to
// upper case; later duplicates replace earlier ones.
func New(airports []*entity.Airport) *Snapshot {
	s := &Snapshot{airports: make(map[string]*entity.Airport, len(airports))}
	for _, a := range airports {
		if a == nil {
			continue
		}
		code := normalize(a.Code)
		if code == "" {
			continue
		}
		cp := *a
		cp.Code = code
		s.airports[code] = &cp
	}
	return s
}

// Lookup resolves an airport code
func (s *Snapshot) Lookup(code string) (*entity.Airport, bool) {
	if s == nil {
		return nil, false
	}
	a, ok := s.airports[normalize(code)]
	return a, ok
}

// Len returns the number of airports in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.airports)
}

// Load builds a snapshot from the airport repository
func Load(ctx context.Context, repo repository.AirportRepository, log logger.Logger) (*Snapshot, error) {
	airports, err := repo.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load airport directory: %w", err)
	}

	s := New(airports)
	log.Info("Loaded airport directory", "airports", s.Len())
	return s, nil
}

// LoadJSON builds a snapshot from a JSON array of airports
func LoadJSON(r io.Reader) (*Snapshot, error) {
	var airports []*entity.Airport
	if err := json.NewDecoder(r).Decode(&airports); err != nil {
		return nil, fmt.Errorf("failed to decode airport directory: %w", err)
	}
	return New(airports), nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var _ repository.AirportDirectory = (*Snapshot)(nil)

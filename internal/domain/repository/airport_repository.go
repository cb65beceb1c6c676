package repository

import (
	"context"

	"travel-ledger-service/internal/domain/entity"
)

// AirportDirectory resolves airport codes to reference data. Implementations
// are read-only snapshots, safe for concurrent use.
type AirportDirectory interface {
	Lookup(code string) (*entity.Airport, bool)
}

// AirportRepository defines the interface for airport reference data storage
type AirportRepository interface {
	ListAirports(ctx context.Context) ([]*entity.Airport, error)
}

package repository

import (
	"context"
	"errors"

	"travel-ledger-service/internal/domain/entity"
)

// ErrHistoryNotFound is returned when no travel history exists for an export id
var ErrHistoryNotFound = errors.New("travel history not found")

// HistoryRepository defines the interface for stored travel history batches
type HistoryRepository interface {
	FindByExportID(ctx context.Context, exportID string) (*entity.TravelHistory, error)
	Upsert(ctx context.Context, history *entity.TravelHistory) error
}

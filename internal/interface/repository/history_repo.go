package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHistoryRepository implements HistoryRepository
type MongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new travel history repository
func NewMongoHistoryRepository(db *mongo.Database, collectionName string) repository.HistoryRepository {
	collection := db.Collection(collectionName)

	// Create unique index on exportId
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"exportId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoHistoryRepository{
		collection: collection,
	}
}

// FindByExportID finds a travel history by export id
func (r *MongoHistoryRepository) FindByExportID(ctx context.Context, exportID string) (*entity.TravelHistory, error) {
	var history entity.TravelHistory
	err := r.collection.FindOne(ctx, bson.M{"exportId": exportID}).Decode(&history)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to find history %s: %w", exportID, err)
	}
	return &history, nil
}

// Upsert creates or replaces a travel history batch
func (r *MongoHistoryRepository) Upsert(ctx context.Context, history *entity.TravelHistory) error {
	if history.ExportID == "" {
		return errors.New("history has no exportId")
	}
	doc := stampImported(history, time.Now().UTC())

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"exportId": doc.ExportID}

	if _, err := r.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert history %s: %w", history.ExportID, err)
	}
	return nil
}

// stampImported returns a copy of history with ImportedAt set to now when it
// is unset. The caller's value is left untouched.
func stampImported(history *entity.TravelHistory, now time.Time) *entity.TravelHistory {
	doc := *history
	if doc.ImportedAt.IsZero() {
		doc.ImportedAt = now
	}
	return &doc
}

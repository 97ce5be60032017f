package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/infrastructure/persistence/mappers"
	"blogsummarizer/internal/infrastructure/persistence/models"
	"blogsummarizer/internal/shared/logger"
)

// MongoArchive implements summary.ArchiveRepository on a MongoDB collection.
// Indexes are created on the first successful Save attempt, not at startup.
type MongoArchive struct {
	collection *mongo.Collection
	mapper     mappers.SummaryMapper
	logger     logger.Interface

	indexMu sync.Mutex
	indexed atomic.Bool
}

// NewMongoArchive creates an archive writing into the given collection.
func NewMongoArchive(collection *mongo.Collection, logger logger.Interface) *MongoArchive {
	return &MongoArchive{
		collection: collection,
		mapper:     mappers.NewSummaryMapper(),
		logger:     logger,
	}
}

// EnsureIndexes creates the unique record_id index. It is safe to call repeatedly.
func (a *MongoArchive) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "record_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_blogs_record_id"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_blogs_created_at"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create archive indexes: %w", err)
	}
	return nil
}

// ensureIndexesOnce runs EnsureIndexes until it succeeds once. A failure is
// logged and retried on the next call.
func (a *MongoArchive) ensureIndexesOnce(ctx context.Context) {
	if a.indexed.Load() {
		return
	}

	a.indexMu.Lock()
	defer a.indexMu.Unlock()
	if a.indexed.Load() {
		return
	}

	if err := a.EnsureIndexes(ctx); err != nil {
		a.logger.Warnw("archive indexes not ensured, will retry on next write",
			"collection", a.collection.Name(),
			"error", err,
		)
		return
	}
	a.indexed.Store(true)
	a.logger.Debugw("archive indexes ensured", "collection", a.collection.Name())
}

// Save inserts one document.
func (a *MongoArchive) Save(ctx context.Context, record *summary.SummaryRecord) error {
	doc := a.mapper.ToDocument(record)
	if doc == nil {
		return fmt.Errorf("summary record is nil")
	}

	a.ensureIndexesOnce(ctx)

	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert archive document %s: %w", record.ID(), err)
	}

	a.logger.Debugw("summary archived", "record_id", doc.RecordID, "collection", a.collection.Name())
	return nil
}

// GetByID retrieves an archived summary by its record ID.
func (a *MongoArchive) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	var doc models.SummaryDocument
	err := a.collection.FindOne(ctx, bson.M{"record_id": recordID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, summary.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get archived summary: %w", err)
	}
	return a.mapper.DocumentToEntity(&doc)
}

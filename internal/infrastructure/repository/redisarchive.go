package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/infrastructure/persistence/mappers"
	"blogsummarizer/internal/infrastructure/persistence/models"
	"blogsummarizer/internal/shared/logger"
)

// DefaultArchivePrefix is the Redis key prefix for archived summaries
const DefaultArchivePrefix = "blogsum:blog:"

// RedisArchive implements summary.ArchiveRepository with one JSON value per
// record, keyed by prefix plus record ID.
type RedisArchive struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	mapper mappers.SummaryMapper
	logger logger.Interface
}

// NewRedisArchive creates a Redis-backed archive. A zero ttl keeps entries forever.
func NewRedisArchive(client *redis.Client, prefix string, ttl time.Duration, logger logger.Interface) *RedisArchive {
	if prefix == "" {
		prefix = DefaultArchivePrefix
	}
	return &RedisArchive{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		mapper: mappers.NewSummaryMapper(),
		logger: logger,
	}
}

func (a *RedisArchive) key(recordID string) string {
	return a.prefix + recordID
}

// Save writes the document under its record key.
func (a *RedisArchive) Save(ctx context.Context, record *summary.SummaryRecord) error {
	doc := a.mapper.ToDocument(record)
	if doc == nil {
		return fmt.Errorf("summary record is nil")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal archive document: %w", err)
	}

	if err := a.client.Set(ctx, a.key(doc.RecordID), data, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to archive summary %s: %w", doc.RecordID, err)
	}

	a.logger.Debugw("summary archived", "record_id", doc.RecordID, "key", a.key(doc.RecordID))
	return nil
}

// GetByID retrieves an archived summary by its record ID.
func (a *RedisArchive) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	data, err := a.client.Get(ctx, a.key(recordID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, summary.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get archived summary: %w", err)
	}

	var doc models.SummaryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archive document: %w", err)
	}
	return a.mapper.DocumentToEntity(&doc)
}

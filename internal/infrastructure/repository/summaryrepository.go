package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/infrastructure/persistence/mappers"
	"blogsummarizer/internal/infrastructure/persistence/models"
	"blogsummarizer/internal/shared/logger"
)

// SummaryRepositoryImpl implements summary.Repository on the primary SQL store.
type SummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SummaryMapper
	logger logger.Interface
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB, logger logger.Interface) summary.Repository {
	return &SummaryRepositoryImpl{
		db:     db,
		mapper: mappers.NewSummaryMapper(),
		logger: logger,
	}
}

// Create inserts one row into the summaries table.
func (r *SummaryRepositoryImpl) Create(ctx context.Context, record *summary.SummaryRecord) error {
	model := r.mapper.ToModel(record)
	if model == nil {
		return fmt.Errorf("summary record is nil")
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert summary %s: %w", record.ID(), err)
	}

	r.logger.Debugw("summary row inserted", "record_id", model.RecordID, "id", model.ID)
	return nil
}

// GetByID retrieves a summary by its record ID.
func (r *SummaryRepositoryImpl) GetByID(ctx context.Context, recordID string) (*summary.SummaryRecord, error) {
	var model models.SummaryModel

	if err := r.db.WithContext(ctx).Where("record_id = ?", recordID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, summary.ErrRecordNotFound
		}
		r.logger.Errorw("failed to get summary", "record_id", recordID, "error", err)
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map summary: %w", err)
	}
	return entity, nil
}

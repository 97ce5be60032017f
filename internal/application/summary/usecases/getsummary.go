package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/shared/errors"
	"blogsummarizer/internal/shared/id"
	"blogsummarizer/internal/shared/logger"
)

const (
	msgSummaryNotFound = "Summary not found."
	msgCannotLoad      = "Failed to load summary."

	StorePrimary = "primary"
	StoreArchive = "archive"
)

type GetSummaryQuery struct {
	RecordID string
}

type GetSummaryResult struct {
	RecordID          string
	SourceURL         string
	OriginalText      string
	Summary           string
	SummaryTranslated string
	CreatedAt         time.Time
	Store             string // which store answered
}

// GetSummaryUseCase reads a saved record back. The primary store is asked
// first; the archive answers for records whose primary write failed.
type GetSummaryUseCase struct {
	primary summary.Repository
	archive summary.ArchiveRepository
	logger  logger.Interface
}

func NewGetSummaryUseCase(
	primary summary.Repository,
	archive summary.ArchiveRepository,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		primary: primary,
		archive: archive,
		logger:  logger,
	}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, query GetSummaryQuery) (*GetSummaryResult, error) {
	recordID := strings.TrimSpace(query.RecordID)
	if !id.IsSummaryID(recordID) {
		return nil, errors.NewNotFoundError(msgSummaryNotFound)
	}

	record, primaryErr := uc.primary.GetByID(ctx, recordID)
	if primaryErr == nil {
		return toGetSummaryResult(record, StorePrimary), nil
	}
	if !stderrors.Is(primaryErr, summary.ErrRecordNotFound) {
		uc.logger.Warnw("primary store lookup failed, trying archive", "record_id", recordID, "error", primaryErr)
	}

	record, archiveErr := uc.archive.GetByID(ctx, recordID)
	if archiveErr == nil {
		return toGetSummaryResult(record, StoreArchive), nil
	}

	if stderrors.Is(primaryErr, summary.ErrRecordNotFound) && stderrors.Is(archiveErr, summary.ErrRecordNotFound) {
		return nil, errors.NewNotFoundError(msgSummaryNotFound)
	}

	uc.logger.Errorw("summary lookup failed",
		"record_id", recordID,
		"primary_error", primaryErr,
		"archive_error", archiveErr,
	)
	return nil, errors.NewInternalError(msgCannotLoad).WithCause(stderrors.Join(primaryErr, archiveErr))
}

func toGetSummaryResult(record *summary.SummaryRecord, store string) *GetSummaryResult {
	return &GetSummaryResult{
		RecordID:          record.ID(),
		SourceURL:         record.SourceURL(),
		OriginalText:      record.OriginalText(),
		Summary:           record.SummaryEn(),
		SummaryTranslated: record.SummaryTranslated(),
		CreatedAt:         record.CreatedAt(),
		Store:             store,
	}
}

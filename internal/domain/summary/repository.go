package summary

import "context"

// Repository is the primary, row-oriented store. A failed Create fails the request.
type Repository interface {
	// Create persists a new record.
	Create(ctx context.Context, record *SummaryRecord) error

	// GetByID retrieves a record by its record ID.
	GetByID(ctx context.Context, recordID string) (*SummaryRecord, error)
}

// ArchiveRepository is the secondary document store. Its failures are
// reported as warnings only.
type ArchiveRepository interface {
	// Save writes the record as a document.
	Save(ctx context.Context, record *SummaryRecord) error

	// GetByID retrieves an archived record by its record ID.
	GetByID(ctx context.Context, recordID string) (*SummaryRecord, error)
}

package services

import (
	"context"
	"time"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/shared/goroutine"
	"blogsummarizer/internal/shared/logger"
)

// SaveOutcome reports each store write independently.
type SaveOutcome struct {
	PrimaryOK    bool
	SecondaryOK  bool
	PrimaryErr   error
	SecondaryErr error
}

// Durable reports whether the record reached the primary store.
func (o SaveOutcome) Durable() bool {
	return o.PrimaryOK
}

// ResultStoreConfig tunes how the two writes are issued.
type ResultStoreConfig struct {
	ParallelWrites bool
	WriteTimeout   time.Duration
}

// ResultStore writes a record to the primary row store and the secondary
// document archive. There is no shared transaction and no rollback.
type ResultStore struct {
	primary summary.Repository
	archive summary.ArchiveRepository
	cfg     ResultStoreConfig
	logger  logger.Interface
}

func NewResultStore(
	primary summary.Repository,
	archive summary.ArchiveRepository,
	cfg ResultStoreConfig,
	logger logger.Interface,
) *ResultStore {
	return &ResultStore{
		primary: primary,
		archive: archive,
		cfg:     cfg,
		logger:  logger,
	}
}

// Save always attempts both writes, even when the primary one fails, so a
// partial write is visible in the outcome.
func (s *ResultStore) Save(ctx context.Context, record *summary.SummaryRecord) SaveOutcome {
	var outcome SaveOutcome

	if s.cfg.ParallelWrites {
		primaryDone := goroutine.SafeGoErr(s.logger, "primary-store-write", func() error {
			return s.writePrimary(ctx, record)
		})
		outcome.SecondaryErr = s.writeSecondary(ctx, record)
		outcome.PrimaryErr = <-primaryDone
	} else {
		outcome.PrimaryErr = s.writePrimary(ctx, record)
		outcome.SecondaryErr = s.writeSecondary(ctx, record)
	}

	outcome.PrimaryOK = outcome.PrimaryErr == nil
	outcome.SecondaryOK = outcome.SecondaryErr == nil

	if !outcome.PrimaryOK {
		s.logger.Errorw("primary store write failed",
			"record_id", record.ID(),
			"error", outcome.PrimaryErr,
		)
	}
	if !outcome.SecondaryOK {
		s.logger.Warnw("secondary store write failed",
			"record_id", record.ID(),
			"error", outcome.SecondaryErr,
		)
	}

	return outcome
}

func (s *ResultStore) writePrimary(ctx context.Context, record *summary.SummaryRecord) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.primary.Create(ctx, record)
}

func (s *ResultStore) writeSecondary(ctx context.Context, record *summary.SummaryRecord) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.archive.Save(ctx, record)
}

func (s *ResultStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.WriteTimeout)
}

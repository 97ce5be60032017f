package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogsummarizer/internal/application/summary/services"
	"blogsummarizer/internal/application/summary/usecases"
	"blogsummarizer/internal/domain/lexicon"
	"blogsummarizer/internal/infrastructure/config"
	"blogsummarizer/internal/infrastructure/database"
	"blogsummarizer/internal/infrastructure/documentstore"
	lexiconLoader "blogsummarizer/internal/infrastructure/lexicon"
	"blogsummarizer/internal/infrastructure/repository"
	"blogsummarizer/internal/infrastructure/scraper"
	"blogsummarizer/internal/interfaces/http/handlers"
	"blogsummarizer/internal/shared/logger"
)

// Container holds the process-wide handles: both store clients, the lexicon,
// the fetcher, the summarize use case and its handlers. Everything is built
// once here and injected; nothing below this layer opens a connection itself.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	// Stores
	db      *gorm.DB
	archive *documentstore.Archive

	// Pipeline
	lexicon      *lexicon.Lexicon
	summarizeUC  *usecases.SummarizeUseCase
	getSummaryUC *usecases.GetSummaryUseCase

	// Handlers
	summarizeHandler *handlers.SummarizeHandler
	healthHandler    *handlers.HealthHandler
}

// NewContainer opens the primary store (pinged), builds the archive client
// (not dialed) and wires the pipeline.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface) (*Container, error) {
	db, err := database.Open(&cfg.Database, log.Named("database"))
	if err != nil {
		return nil, fmt.Errorf("failed to open primary store: %w", err)
	}

	archive, err := documentstore.Open(ctx, &cfg.Archive, &cfg.Redis, log.Named("archive"))
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to open archive store: %w", err)
	}

	c, err := newContainer(cfg, log, db, archive)
	if err != nil {
		_ = archive.Close(ctx)
		_ = database.Close(db)
		return nil, err
	}
	return c, nil
}

func newContainer(cfg *config.Config, log logger.Interface, db *gorm.DB, archive *documentstore.Archive) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		cfg:     cfg,
		log:     log,
		db:      db,
		archive: archive,
	}

	lex, err := lexiconLoader.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	c.lexicon = lex
	log.Infow("lexicon loaded", "entries", lex.Len(), "path", cfg.Lexicon.Path)

	c.initPipeline()
	c.initHandlers()

	return c, nil
}

func (c *Container) initPipeline() {
	fetcher := scraper.NewArticleFetcher(scraper.Config{
		Timeout:      c.cfg.Scraper.Timeout(),
		UserAgent:    c.cfg.Scraper.UserAgent,
		Selectors:    c.cfg.Scraper.Selectors,
		MaxBodyBytes: c.cfg.Scraper.MaxBodyBytes,
	}, c.log.Named("scraper"))

	primary := repository.NewSummaryRepository(c.db, c.log.Named("summary_repository"))

	store := services.NewResultStore(
		primary,
		c.archive.Repository,
		services.ResultStoreConfig{
			ParallelWrites: c.cfg.Store.ParallelWrites,
			WriteTimeout:   c.cfg.Store.WriteTimeout(),
		},
		c.log.Named("result_store"),
	)

	c.summarizeUC = usecases.NewSummarizeUseCase(
		fetcher,
		services.NewExtractiveSummarizer(),
		services.NewLexicalTranslator(c.lexicon),
		store,
		c.log.Named("summarize"),
	)

	c.getSummaryUC = usecases.NewGetSummaryUseCase(primary, c.archive.Repository, c.log.Named("get_summary"))
}

func (c *Container) initHandlers() {
	c.summarizeHandler = handlers.NewSummarizeHandler(c.summarizeUC, c.getSummaryUC, c.log.Named("summarize_handler"))
	c.healthHandler = handlers.NewHealthHandler(c.lexicon)
}

// DB returns the primary store handle, used for migrations at startup.
func (c *Container) DB() *gorm.DB {
	return c.db
}

// SummarizeUseCase returns the wired pipeline for non-HTTP callers.
func (c *Container) SummarizeUseCase() *usecases.SummarizeUseCase {
	return c.summarizeUC
}

// Shutdown closes both store clients. Errors are logged and joined.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if err := c.archive.Close(ctx); err != nil {
		c.log.Errorw("failed to close archive store", "driver", c.archive.Driver, "error", err)
		errs = append(errs, err)
	}

	if err := database.Close(c.db); err != nil {
		c.log.Errorw("failed to close primary store", "error", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

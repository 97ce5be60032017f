package usecases

import (
	"context"
	"strings"

	"blogsummarizer/internal/application/summary/services"
	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/errors"
	"blogsummarizer/internal/shared/logger"
	"blogsummarizer/internal/shared/utils/logutil"
)

const (
	msgNoInput          = "No blog content to summarize."
	msgCannotRetrieve   = "Could not retrieve content."
	msgCannotPersist    = "Failed to save summary."
	msgRecordBuild      = "Failed to build summary record."
	msgUnexpected       = "Unexpected internal failure."
	warnArchiveNotSaved = "summary was not written to the archive store"
)

// ContentFetcher retrieves a page and returns its normalized article text.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Summarizer reduces text to a short extract.
type Summarizer interface {
	Summarize(text string) string
}

// Translator rewrites text through a lexicon.
type Translator interface {
	Translate(text string) string
}

// RecordSaver persists a record to both stores.
type RecordSaver interface {
	Save(ctx context.Context, record *summary.SummaryRecord) services.SaveOutcome
}

type SummarizeCommand struct {
	URL  string
	Text string
}

type SummarizeResult struct {
	RecordID          string
	SourceURL         string
	OriginalText      string
	Summary           string
	SummaryTranslated string
	Warnings          []string
}

type SummarizeUseCase struct {
	fetcher    ContentFetcher
	summarizer Summarizer
	translator Translator
	store      RecordSaver
	logger     logger.Interface
}

func NewSummarizeUseCase(
	fetcher ContentFetcher,
	summarizer Summarizer,
	translator Translator,
	store RecordSaver,
	logger logger.Interface,
) *SummarizeUseCase {
	return &SummarizeUseCase{
		fetcher:    fetcher,
		summarizer: summarizer,
		translator: translator,
		store:      store,
		logger:     logger,
	}
}

// Execute runs one request through the pipeline. Either every stage
// completes and a result is returned, or an AppError is returned and no
// summary leaves this function.
func (uc *SummarizeUseCase) Execute(ctx context.Context, cmd SummarizeCommand) (*SummarizeResult, error) {
	run := &pipelineRun{stage: summary.StageReceived, logger: uc.logger}
	url := strings.TrimSpace(cmd.URL)
	text := strings.TrimSpace(cmd.Text)

	// Supplied text always wins, even when it trims to nothing; only an
	// absent text falls back to the url.
	textSupplied := cmd.Text != ""
	if text == "" && (textSupplied || url == "") {
		return nil, run.fail(errors.NewInputError(msgNoInput), nil)
	}

	run.advance()
	if !textSupplied {
		fetched, err := uc.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, run.fail(errors.NewAcquisitionError(msgCannotRetrieve), err, "url", logutil.TruncateForLog(url, constants.LogPreviewLength))
		}
		text = fetched
	}

	run.advance()
	summaryEn := uc.summarizer.Summarize(text)

	run.advance()
	translated := uc.translator.Translate(summaryEn)

	run.advance()
	record, err := summary.NewSummaryRecord(url, text, summaryEn, translated)
	if err != nil {
		return nil, run.fail(errors.NewInternalError(msgRecordBuild), err)
	}

	outcome := uc.store.Save(ctx, record)
	if !outcome.Durable() {
		return nil, run.fail(errors.NewPersistenceError(msgCannotPersist), outcome.PrimaryErr, "record_id", record.ID())
	}

	warnings := []string{}
	if !outcome.SecondaryOK {
		warnings = append(warnings, warnArchiveNotSaved)
	}

	run.advance()
	uc.logger.Infow("summary created",
		"record_id", record.ID(),
		"url", logutil.TruncateForLog(url, constants.LogPreviewLength),
		"text_length", len(text),
		"archived", outcome.SecondaryOK,
	)

	return &SummarizeResult{
		RecordID:          record.ID(),
		SourceURL:         url,
		OriginalText:      text,
		Summary:           summaryEn,
		SummaryTranslated: translated,
		Warnings:          warnings,
	}, nil
}

// pipelineRun tracks the stage of a single Execute call.
type pipelineRun struct {
	stage  summary.Stage
	logger logger.Interface
}

// advance moves to the next success stage. A finished run stays where it is.
func (r *pipelineRun) advance() {
	if r.stage.IsTerminal() {
		r.logger.Warnw("pipeline already finished", "stage", r.stage)
		return
	}
	r.stage = r.stage.Next()
	r.logger.Debugw("pipeline stage", "stage", r.stage)
}

// fail logs the internal cause against the stage it happened in and returns
// the user-facing error with the cause attached.
func (r *pipelineRun) fail(appErr *errors.AppError, cause error, keysAndValues ...any) error {
	failedAt := r.stage
	r.stage = summary.StageFailed

	if !failedAt.CanFail() {
		r.logger.Errorw("pipeline failed in a stage that cannot fail", "stage", failedAt, "error_type", appErr.Type)
		appErr = errors.NewInternalError(msgUnexpected)
	}

	fields := append([]any{"stage", failedAt, "error_type", appErr.Type}, keysAndValues...)
	if cause != nil {
		fields = append(fields, "error", cause)
		r.logger.Errorw("summarize pipeline failed", fields...)
		return appErr.WithCause(cause)
	}
	r.logger.Warnw("summarize pipeline rejected input", fields...)
	return appErr
}

package handlers

import (
	"context"

	"blogsummarizer/internal/application/summary/usecases"
)

// Use case interfaces for SummarizeHandler

type summarizeUseCase interface {
	Execute(ctx context.Context, cmd usecases.SummarizeCommand) (*usecases.SummarizeResult, error)
}

type getSummaryUseCase interface {
	Execute(ctx context.Context, query usecases.GetSummaryQuery) (*usecases.GetSummaryResult, error)
}

// lexiconSizer reports how many entries the loaded lexicon holds.
type lexiconSizer interface {
	Len() int
}

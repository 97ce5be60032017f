package services

import (
	"strings"

	"blogsummarizer/internal/shared/constants"
)

// ExtractiveSummarizer keeps the leading sentence fragments of a text.
type ExtractiveSummarizer struct {
	sentences int
	marker    string
}

func NewExtractiveSummarizer() *ExtractiveSummarizer {
	return &ExtractiveSummarizer{
		sentences: constants.SummarySentenceCount,
		marker:    constants.SummaryMarker,
	}
}

// Summarize splits on '.', keeps the first two fragments joined by '.', and
// appends the summary marker. It never fails.
func (s *ExtractiveSummarizer) Summarize(text string) string {
	fragments := strings.SplitN(text, ".", s.sentences+1)
	if len(fragments) > s.sentences {
		fragments = fragments[:s.sentences]
	}
	return strings.Join(fragments, ".") + s.marker
}

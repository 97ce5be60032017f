// Package summary provides the summary record aggregate and its persistence ports.
package summary

import (
	"fmt"
	"strings"
	"time"

	"blogsummarizer/internal/shared/id"
)

// SummaryRecord is the result of one successful pipeline run. It is never
// mutated after construction.
type SummaryRecord struct {
	id                string
	sourceURL         string
	originalText      string
	summaryEn         string
	summaryTranslated string
	createdAt         time.Time
}

// NewSummaryRecord creates a record with a fresh ID and the current UTC time.
func NewSummaryRecord(sourceURL, originalText, summaryEn, summaryTranslated string) (*SummaryRecord, error) {
	if strings.TrimSpace(originalText) == "" {
		return nil, ErrEmptyOriginalText
	}

	recordID, err := id.NewSummaryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record ID: %w", err)
	}

	return &SummaryRecord{
		id:                recordID,
		sourceURL:         sourceURL,
		originalText:      originalText,
		summaryEn:         summaryEn,
		summaryTranslated: summaryTranslated,
		createdAt:         time.Now().UTC(),
	}, nil
}

// ReconstructSummaryRecord reconstructs a record from persistence
func ReconstructSummaryRecord(
	recordID string,
	sourceURL string,
	originalText string,
	summaryEn string,
	summaryTranslated string,
	createdAt time.Time,
) (*SummaryRecord, error) {
	if recordID == "" {
		return nil, fmt.Errorf("record ID is required")
	}
	if originalText == "" {
		return nil, ErrEmptyOriginalText
	}

	return &SummaryRecord{
		id:                recordID,
		sourceURL:         sourceURL,
		originalText:      originalText,
		summaryEn:         summaryEn,
		summaryTranslated: summaryTranslated,
		createdAt:         createdAt,
	}, nil
}

// ID returns the record ID shared by both stores
func (r *SummaryRecord) ID() string {
	return r.id
}

// SourceURL returns the URL the text came from; empty when text was supplied directly
func (r *SummaryRecord) SourceURL() string {
	return r.sourceURL
}

func (r *SummaryRecord) OriginalText() string {
	return r.originalText
}

func (r *SummaryRecord) SummaryEn() string {
	return r.summaryEn
}

func (r *SummaryRecord) SummaryTranslated() string {
	return r.summaryTranslated
}

func (r *SummaryRecord) CreatedAt() time.Time {
	return r.createdAt
}

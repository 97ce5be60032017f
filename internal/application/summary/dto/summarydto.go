package dto

import "time"

// SummarizeRequest is the inbound body of the summarize operation
type SummarizeRequest struct {
	URL  string `json:"url" validate:"max=2048"`     // Article URL, fetched only when text is empty
	Text string `json:"text" validate:"max=1000000"` // Raw article text, wins over url when non-empty
}

// SummarizeResponse is the success body of the summarize operation
type SummarizeResponse struct {
	Success           bool     `json:"success"`
	Summary           string   `json:"summary"`           // Extractive English summary
	SummaryTranslated string   `json:"summaryTranslated"` // Lexical translation of the summary
	RecordID          string   `json:"recordId"`          // ID shared by both store writes
	Warnings          []string `json:"warnings"`          // Non-fatal problems, e.g. a failed archive write
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status         string `json:"status"`
	LexiconEntries int    `json:"lexicon_entries"`
}

// SummaryRecordResponse is the body of a saved-summary lookup
type SummaryRecordResponse struct {
	Success           bool      `json:"success"`
	RecordID          string    `json:"recordId"`
	URL               string    `json:"url,omitempty"`
	OriginalText      string    `json:"originalText"`
	Summary           string    `json:"summary"`
	SummaryTranslated string    `json:"summaryTranslated"`
	CreatedAt         time.Time `json:"createdAt"`
	Store             string    `json:"store"` // "primary" or "archive"
}

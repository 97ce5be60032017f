package summary

import "errors"

var (
	// ErrEmptyOriginalText is returned when a record would carry no source text.
	ErrEmptyOriginalText = errors.New("original text is required")

	// ErrRecordNotFound is returned when a record lookup misses.
	ErrRecordNotFound = errors.New("summary record not found")
)

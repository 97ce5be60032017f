package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderUserAgent   = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableSummaries = "summaries"

	// Summary marker appended after the leading sentences
	SummaryMarker = ". [AI summary simulated]"

	// Number of leading sentence fragments kept by the summarizer
	SummarySentenceCount = 2

	// Log previews
	LogPreviewLength = 80
)

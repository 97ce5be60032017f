package models

import "time"

// SummaryDocument is the archive representation of a summary record. The same
// shape is stored as BSON in MongoDB and as JSON in Redis.
type SummaryDocument struct {
	RecordID  string    `bson:"record_id" json:"record_id"`
	URL       string    `bson:"url,omitempty" json:"url,omitempty"`
	FullText  string    `bson:"full_text" json:"full_text"`
	SummaryEn string    `bson:"summary_en" json:"summary_en"`
	SummaryUr string    `bson:"summary_ur" json:"summary_ur"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

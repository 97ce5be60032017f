package models

import (
	"time"

	"blogsummarizer/internal/shared/constants"
)

// SummaryModel represents the database persistence model for summary records.
type SummaryModel struct {
	ID           uint      `gorm:"primarykey"`
	RecordID     string    `gorm:"column:record_id;not null;size:32;uniqueIndex:idx_summaries_record_id"` // Prefixed ID (sum_xxx) shared with the archive
	URL          *string   `gorm:"column:url;size:2048"`                                                  // nil when text was supplied directly
	OriginalText string    `gorm:"column:original_text;type:text;not null"`
	SummaryEn    string    `gorm:"column:summary_en;type:text;not null"`
	SummaryUr    string    `gorm:"column:summary_ur;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;index:idx_summaries_created_at"`
}

// TableName specifies the table name for GORM.
func (SummaryModel) TableName() string {
	return constants.TableSummaries
}

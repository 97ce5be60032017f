package migration

import (
	"blogsummarizer/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SummaryModel{},
	}
}

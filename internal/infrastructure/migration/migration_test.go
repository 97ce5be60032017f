package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blogsummarizer/internal/infrastructure/persistence/models"
	"blogsummarizer/internal/shared/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openTestDB(t)
	s, err := NewGooseStrategy("sqlite", logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, s.Migrate(db))
	assert.True(t, db.Migrator().HasTable("summaries"))

	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Up is idempotent once applied.
	require.NoError(t, s.Migrate(db))
	require.NoError(t, s.Status(db))

	require.NoError(t, db.Create(&models.SummaryModel{
		RecordID:     "sum_abcdefABCDEF",
		OriginalText: "text",
		SummaryEn:    "s",
		SummaryUr:    "t",
	}).Error)

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("summaries"))
}

func TestNewGooseStrategy_UnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("oracle", logger.NewNopLogger())
	assert.Error(t, err)
}

func TestManager_AutoMigrateInDevelopment(t *testing.T) {
	db := openTestDB(t)
	m, err := NewManager("development", "sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	require.NoError(t, m.Migrate(db, AutoMigrateModels()...))
	assert.True(t, db.Migrator().HasTable(&models.SummaryModel{}))
	assert.True(t, db.Migrator().HasIndex(&models.SummaryModel{}, "idx_summaries_record_id"))
}

func TestManager_GooseOutsideDevelopment(t *testing.T) {
	m, err := NewManager("production", "mysql", logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())
}

package snapshot

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestRepository opens an in-memory SQLite snapshot store for tests.
func SetupTestRepository(t *testing.T) *Repository {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to open test snapshot database: %v", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("failed to migrate test snapshot schema: %v", err)
	}

	return NewRepository(db)
}

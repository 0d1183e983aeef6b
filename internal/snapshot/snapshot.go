// Package snapshot persists the whole domain state as a single named
// JSON blob in a local SQLite database. The snapshot is rewritten
// wholesale after every mutation and reloaded wholesale at startup;
// there is no incremental or log-structured persistence.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wisewallet/internal/config"
	"wisewallet/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one stored snapshot row, keyed by storage name.
type Record struct {
	Name      string `gorm:"primaryKey;type:varchar(64)"`
	Data      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for Record.
func (Record) TableName() string {
	return "snapshots"
}

// Repository reads and writes state snapshots.
type Repository struct {
	db *gorm.DB
}

// Open connects to the SQLite snapshot database and ensures the schema
// exists, preferring SQL migrations with AutoMigrate as the fallback.
func Open(cfg *config.DatabaseConfig) (*Repository, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewRepository wraps an existing connection; used by tests.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save serializes the state and upserts it under the given storage name.
func (r *Repository) Save(name string, state *models.DomainState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := Record{Name: name, Data: string(data), UpdatedAt: time.Now().UTC()}

	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", name, err)
	}

	return nil
}

// Load reads the snapshot under the given storage name. The second
// return value is false when no snapshot exists yet.
func (r *Repository) Load(name string) (*models.DomainState, bool, error) {
	var record Record
	err := r.db.First(&record, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %q: %w", name, err)
	}

	state := models.NewDomainState()
	if err := json.Unmarshal([]byte(record.Data), state); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}

	return state, true, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the underlying database.
func (r *Repository) HealthCheck() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

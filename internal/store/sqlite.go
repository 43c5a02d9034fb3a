package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// stateRecord is the single-row table backing the SQLite driver. The
// whole application state lives in one JSON payload under a fixed key,
// matching the single-key layout of the file driver; SQLite's
// transactional write gives the same crash-safety the file driver gets
// from rename.
type stateRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of gorm's pluralisation.
func (stateRecord) TableName() string { return "app_state" }

// stateRowID is the fixed primary key of the only row.
const stateRowID = 1

// SQLiteStore persists the state in a local SQLite database.
type SQLiteStore struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and
// migrates the state table. log may be nil.
func NewSQLiteStore(path string, log *slog.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store.NewSQLiteStore: open: %w", err)
	}
	if err := db.AutoMigrate(&stateRecord{}); err != nil {
		return nil, fmt.Errorf("store.NewSQLiteStore: migrate: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// Load reads and decodes the state row. A missing row or undecodable
// payload falls back to the seed state.
func (s *SQLiteStore) Load() (domain.AppState, error) {
	var rec stateRecord
	err := s.db.First(&rec, stateRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Seed(), nil
		}
		return domain.AppState{}, fmt.Errorf("store.SQLiteStore.Load: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal([]byte(rec.Payload), &state); err != nil {
		s.log.Warn("stored state is not valid JSON, starting from seed state", "error", err)
		return Seed(), nil
	}
	return state, nil
}

// Save upserts the single state row inside a transaction.
func (s *SQLiteStore) Save(state domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: encode: %w", err)
	}

	rec := stateRecord{ID: stateRowID, Payload: string(raw), UpdatedAt: time.Now().UTC()}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("store.SQLiteStore.Save: %w", err)
	}
	return nil
}

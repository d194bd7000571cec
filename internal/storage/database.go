package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/games"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
)

// OpenAndMigrate opens the database, migrates the games table and, when seed
// is set, inserts registry rows the database does not have yet. Existing rows
// are never overwritten: the database stays the source of truth.
func OpenAndMigrate(dataSourceName string, seed bool) (*gorm.DB, error) {
	if err := ensureDir(dataSourceName); err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&GameRecord{}); err != nil {
		return nil, err
	}
	if seed {
		n, err := seedRegistry(db)
		if err != nil {
			return nil, fmt.Errorf("seed games: %w", err)
		}
		if n > 0 {
			logging.Info("seeded games table", logging.Fields{constants.LogFieldSeededCount: n})
		}
	}
	return db, nil
}

func seedRegistry(db *gorm.DB) (int64, error) {
	entries := games.Entries()
	records := make([]GameRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, recordFromEntry(e))
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&records)
	return res.RowsAffected, res.Error
}

// ensureDir creates the parent directory of a plain file path. URI and
// in-memory data sources are left alone.
func ensureDir(dsn string) error {
	if strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory %s: %w", dir, err)
	}
	return nil
}

package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListGames() ([]GameRecord, error) {
	var out []GameRecord
	if err := r.db.Order("game_key").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) GetGameByID(id string) (*GameRecord, error) {
	var g GameRecord
	err := r.db.Where("lower(id) = ?", strings.ToLower(id)).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

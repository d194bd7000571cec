package storage

import (
	"time"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/games"
)

// GameRecord is a row of the games table, the authoritative copy of the
// registry.
type GameRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Key       string    `json:"key" gorm:"column:game_key;uniqueIndex;size:32;not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GameRecord) TableName() string { return "games" }

func recordFromEntry(e games.Entry) GameRecord {
	return GameRecord{ID: e.ID.String(), Key: e.Key.String(), Name: e.Name}
}

package api

import (
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/storage"
)

// GameHandler groups the game registry HTTP handlers. The registry itself is
// static; repo is only consulted to report drift against the database.
type GameHandler struct {
	repo storage.Repository
}

// NewGameHandler creates a new GameHandler backed by the given repository.
func NewGameHandler(repo storage.Repository) *GameHandler {
	return &GameHandler{repo: repo}
}

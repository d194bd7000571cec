package storage

import "errors"

var ErrGameNotFound = errors.New("game not found")

type Repository interface {
	// ListGames returns every row of the games table ordered by key.
	ListGames() ([]GameRecord, error)
	// GetGameByID returns ErrGameNotFound when no row has the identifier.
	GetGameByID(id string) (*GameRecord, error)
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/games"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/storage"
)

// ListGames returns every registered game in declaration order.
func (h *GameHandler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, games.Entries())
}

// gameResponse is a registry entry plus how its database row compares.
// InSync is omitted when the database could not be read.
type gameResponse struct {
	games.Entry
	InSync *bool           `json:"in_sync,omitempty"`
	Drift  []storage.Drift `json:"drift,omitempty"`
}

// GetGame returns a game by its identifier. The answer always comes from the
// registry; the database row is only used to report drift for that game.
func (h *GameHandler) GetGame(c *gin.Context) {
	raw := c.Param("gameID")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.gameNotFound(c, raw)
		return
	}
	name, err := games.LookupDisplayName(id)
	if err != nil {
		h.gameNotFound(c, raw)
		return
	}
	k, _ := games.KeyOf(id)
	out := gameResponse{Entry: games.Entry{Key: k, ID: id, Name: name}}

	row, err := h.repo.GetGameByID(id.String())
	switch {
	case errors.Is(err, storage.ErrGameNotFound):
		row = nil
	case err != nil:
		logging.Error("failed to load game row", err, logging.Fields{constants.LogFieldGameID: id.String()})
		c.JSON(http.StatusOK, out)
		return
	}
	out.Drift = storage.CompareRecord(out.Entry, row)
	inSync := len(out.Drift) == 0
	out.InSync = &inSync
	c.JSON(http.StatusOK, out)
}

func (h *GameHandler) gameNotFound(c *gin.Context, raw string) {
	logging.Debug("game lookup miss", logging.Fields{constants.LogFieldGameID: raw})
	c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
}

// GetGameByKey returns a game by its symbolic key, matched case-insensitively.
func (h *GameHandler) GetGameByKey(c *gin.Context) {
	raw := c.Param("gameKey")
	k, err := games.ParseKey(raw)
	if err != nil {
		logging.Debug("game key miss", logging.Fields{constants.LogFieldGameKey: raw})
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownGameKey})
		return
	}
	entry, _ := games.EntryFor(k)
	c.JSON(http.StatusOK, entry)
}

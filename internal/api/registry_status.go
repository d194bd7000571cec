package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/constants"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/dedupe"
	"github.com/losefr9/egyptian-mind-arena-sub001/internal/storage"
)

// RegistryStatus compares the games table with the compiled-in registry and
// reports any drift. Concurrent requests share one database read.
func (h *GameHandler) RegistryStatus(c *gin.Context) {
	v, err, _ := dedupe.VerifyGroup.Do(dedupe.VerifyKey, func() (interface{}, error) {
		return storage.VerifyRegistry(h.repo)
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedVerifyRegistry})
		return
	}
	drift, _ := v.([]storage.Drift)
	if drift == nil {
		drift = []storage.Drift{}
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyInSync: len(drift) == 0,
		constants.JSONKeyDrift:  drift,
	})
}

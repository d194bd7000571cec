package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/version"
)

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/losefr9/egyptian-mind-arena-sub001/internal/logging"
)

// RequestLogger writes one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := logging.Fields{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			var err error
			if last := c.Errors.Last(); last != nil {
				err = last.Err
			}
			logging.Error("request failed", err, fields)
			return
		}
		logging.Debug("request", fields)
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/pkg/middleware/requestid"
)

// Audit logs every admin write that completed without error, attributing it
// to the caller. Reads are not logged.
func Audit(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		if c.Request.Method != http.MethodPost || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		caller := CallerFrom(c)
		if !caller.Authenticated {
			return
		}
		logger.Info("admin_write",
			zap.String("user_id", caller.UserID),
			zap.String("username", caller.Username),
			zap.String("route", c.FullPath()),
			zap.String("id", c.Param("id")),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", requestid.Value(c)),
		)
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"registro/internal/logs"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger tags every request with an id and logs method, path,
// status and duration through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		logs.Logger.WithFields(map[string]interface{}{
			"reqid":  requestID,
			"method": c.Request.Method,
			"uri":    c.Request.RequestURI,
			"status": c.Writer.Status(),
			"bytes":  c.Writer.Size(),
			"dur":    time.Since(start).String(),
			"ip":     c.ClientIP(),
		}).Info("request completed")
	}
}

// internal/middleware/logging_middleware.go
package middleware

import (
	"time"

	"tripalert-gateway/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// LoggingMiddleware logs one line per request with a ULID request id
// for correlating gateway and backend log entries, and records the
// finalized response on the gateway request counter.
func LoggingMiddleware(logger *zap.Logger, m metrics.GatewayMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := ulid.Make().String()
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()

		m.IncRequest(c.FullPath(), c.Writer.Status())

		logger.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

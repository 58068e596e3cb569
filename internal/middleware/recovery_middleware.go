// internal/middleware/recovery_middleware.go
package middleware

import (
	"errors"

	xerrors "tripalert-gateway/internal/pkg/errors"
	"tripalert-gateway/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware contains a failing request so it never affects
// another. A recovered error wrapping ErrUnauthorized surfaces as 401:
// that is how a validation failure discovered deep inside a forwarding
// call still reads as unauthorized rather than a generic fault.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
				)
				if err, ok := r.(error); ok && errors.Is(err, xerrors.ErrUnauthorized) {
					response.Unauthorized(c)
					return
				}
				response.Internal(c)
			}
		}()
		c.Next()
	}
}

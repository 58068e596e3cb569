// internal/middleware/auth_middleware.go
package middleware

import (
	"errors"

	"tripalert-gateway/internal/domain/identity"
	"tripalert-gateway/internal/metrics"
	xerrors "tripalert-gateway/internal/pkg/errors"
	"tripalert-gateway/internal/pkg/response"
	"tripalert-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

type AuthMiddleware struct {
	sessions *session.Manager
	cookie   string
	logger   *zap.Logger
	metrics  metrics.GatewayMetrics
}

func NewAuthMiddleware(sessions *session.Manager, cookie string, logger *zap.Logger, m metrics.GatewayMetrics) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
		metrics:  m,
	}
}

// Auth validates the caller's session and stashes the verified
// identity into the request context. An invalid or absent session is
// rejected here with 401 before any backend call can happen; handlers
// behind this middleware may assume a fully-populated identity.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(m.cookie)
		if err != nil || sid == "" {
			m.metrics.IncUnauthorized(c.FullPath())
			response.Unauthorized(c)
			return
		}

		id, err := m.sessions.Validate(c.Request.Context(), sid)
		if err != nil {
			if errors.Is(err, xerrors.ErrUnauthorized) {
				m.metrics.IncUnauthorized(c.FullPath())
				response.Unauthorized(c)
				return
			}
			// Session store fault, not an auth decision.
			m.logger.Error("session validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Internal(c)
			return
		}

		c.Set(identityKey, *id)
		c.Next()
	}
}

// RequireRole rejects identities lacking every one of the given roles.
// MUST be used after Auth().
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			response.Unauthorized(c)
			return
		}

		for _, role := range roles {
			if id.HasRole(role) {
				c.Next()
				return
			}
		}

		m.logger.Warn("role check failed",
			zap.String("user_id", id.UserID),
			zap.String("path", c.Request.URL.Path),
			zap.Strings("required_roles", roles),
		)
		response.Forbidden(c)
	}
}

// AdminOnly returns middlewares for administrator-only routes.
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(identity.RoleAdmin),
	}
}

// GetIdentity returns the verified identity set by Auth().
func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return identity.Identity{}, false
	}

	id, ok := v.(identity.Identity)
	return id, ok
}

// internal/middleware/helpers.go
package middleware

import (
	"tripalert-gateway/internal/domain/identity"

	"github.com/gin-gonic/gin"
)

// MustGetIdentity gets the verified identity from context or panics.
// Handlers behind Auth() may use this freely; the recovery middleware
// turns the panic into a 500 if a route was miswired.
func MustGetIdentity(c *gin.Context) identity.Identity {
	id, exists := GetIdentity(c)
	if !exists {
		panic("identity not found in context")
	}
	return id
}

// IsAuthenticated checks if the request carries a verified identity.
func IsAuthenticated(c *gin.Context) bool {
	_, exists := GetIdentity(c)
	return exists
}

// IsAdmin checks if the caller holds the admin role.
func IsAdmin(c *gin.Context) bool {
	id, exists := GetIdentity(c)
	return exists && id.HasRole(identity.RoleAdmin)
}

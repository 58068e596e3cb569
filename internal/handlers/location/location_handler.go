// internal/handlers/location/location_handler.go
package location

import (
	"net/http"

	"tripalert-gateway/internal/domain/location"
	"tripalert-gateway/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler serves the static selectable-city reference list.
// This is the one surface answered by the gateway itself rather than
// relayed from the backend.
type LocationHandler struct {
	logger *zap.Logger
}

func NewLocationHandler(logger *zap.Logger) *LocationHandler {
	return &LocationHandler{logger: logger}
}

// ListCities returns the level-2 entries of the location table.
func (h *LocationHandler) ListCities(c *gin.Context) {
	cities, err := location.Cities()
	if err != nil {
		h.logger.Error("location table unavailable", zap.Error(err))
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, cities)
}

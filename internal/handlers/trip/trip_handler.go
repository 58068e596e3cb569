// internal/handlers/trip/trip_handler.go
package trip

import (
	"net/http"

	"tripalert-gateway/internal/middleware"
	"tripalert-gateway/internal/pkg/response"
	"tripalert-gateway/internal/proxy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler forwards trip operations. Create and delete are
// administrative and sit behind the admin role check; routing enforces
// that, not the handler.
type TripHandler struct {
	backend *proxy.Client
	logger  *zap.Logger
}

func NewTripHandler(backend *proxy.Client, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		backend: backend,
		logger:  logger,
	}
}

// CreateTrip forwards an administrator's found-trip payload verbatim.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	id := middleware.MustGetIdentity(c)

	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodPost, "/api/trips", body)
	if err != nil {
		h.logger.Error("create trip failed", zap.String("user_id", id.UserID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// DeleteTrip forwards a trip deletion.
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id := middleware.MustGetIdentity(c)
	tripID := c.Param("id")

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodDelete, "/api/trips/"+tripID, nil)
	if err != nil {
		h.logger.Error("delete trip failed", zap.String("trip_id", tripID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// ListTripsBySubscription returns the trips attached to one
// subscription.
func (h *TripHandler) ListTripsBySubscription(c *gin.Context) {
	id := middleware.MustGetIdentity(c)
	subID := c.Param("subscriptionId")

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodGet, "/api/trips/subscription/"+subID, nil)
	if err != nil {
		h.logger.Error("list trips failed", zap.String("subscription_id", subID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

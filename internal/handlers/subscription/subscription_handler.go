// internal/handlers/subscription/subscription_handler.go
package subscription

import (
	"encoding/json"
	"net/http"

	"tripalert-gateway/internal/middleware"
	"tripalert-gateway/internal/pkg/localtime"
	"tripalert-gateway/internal/pkg/response"
	"tripalert-gateway/internal/proxy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	backend *proxy.Client
	logger  *zap.Logger
}

func NewSubscriptionHandler(backend *proxy.Client, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		backend: backend,
		logger:  logger,
	}
}

// ListSubscriptions returns the caller's subscriptions. The backend is
// queried by the verified user id, never by anything client-supplied.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	id := middleware.MustGetIdentity(c)

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodGet, "/api/subscriptions/"+id.UserID, nil)
	if err != nil {
		h.logger.Error("list subscriptions failed", zap.String("user_id", id.UserID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// CreateSubscription forwards a new subscription. The identity's
// user_id and email always overwrite whatever the client sent for
// those fields, and a missing date_time is encoded here from the raw
// date/time form fields. Everything else passes through untouched,
// including a 409 when the backend reports a duplicate.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	id := middleware.MustGetIdentity(c)

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if originEqualsDestination(payload) {
		response.BadRequest(c, "origin and destination must differ")
		return
	}

	payload["user_id"] = id.UserID
	payload["email"] = id.Email

	if dt, ok := payload["date_time"].(string); !ok || dt == "" {
		date, _ := payload["date"].(string)
		tod, _ := payload["time"].(string)
		if date == "" {
			response.BadRequest(c, "date_time or date is required")
			return
		}
		encoded, err := localtime.EncodeLocal(date, tod)
		if err != nil {
			response.BadRequest(c, "invalid date or time")
			return
		}
		payload["date_time"] = encoded
	}
	delete(payload, "date")
	delete(payload, "time")

	body, err := json.Marshal(payload)
	if err != nil {
		response.Internal(c)
		return
	}

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodPost, "/api/subscriptions", body)
	if err != nil {
		h.logger.Error("create subscription failed", zap.String("user_id", id.UserID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// UpdateSubscription forwards a partial update, e.g. {"is_active":false}.
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id := middleware.MustGetIdentity(c)
	subID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodPut, "/api/subscriptions/"+subID, body)
	if err != nil {
		h.logger.Error("update subscription failed", zap.String("subscription_id", subID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// DeleteSubscription forwards a delete. A subscription that raced away
// already is a normal relayed outcome, not a gateway fault.
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id := middleware.MustGetIdentity(c)
	subID := c.Param("id")

	result, err := h.backend.Do(c.Request.Context(), id, http.MethodDelete, "/api/subscriptions/"+subID, nil)
	if err != nil {
		h.logger.Error("delete subscription failed", zap.String("subscription_id", subID), zap.Error(err))
		response.Internal(c)
		return
	}

	response.Relay(c, result.Status, result.Body)
}

// originEqualsDestination reports whether both route ids are present
// and equal. The UI enforced this invariant in the original form; with
// the UI out of scope it is checked here before forwarding.
func originEqualsDestination(payload map[string]interface{}) bool {
	origin, ok1 := payload["origin_id"].(float64)
	destination, ok2 := payload["destination_id"].(float64)
	return ok1 && ok2 && origin != 0 && origin == destination
}

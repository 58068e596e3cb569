// internal/app/router.go
package app

import (
	locationHandler "tripalert-gateway/internal/handlers/location"
	subscriptionHandler "tripalert-gateway/internal/handlers/subscription"
	tripHandler "tripalert-gateway/internal/handlers/trip"
	"tripalert-gateway/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	SubscriptionHandler *subscriptionHandler.SubscriptionHandler
	TripHandler         *tripHandler.TripHandler
	LocationHandler     *locationHandler.LocationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, registry *prometheus.Registry, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health & Metrics ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// ==================== Reference Data ====================
	locations := api.Group("/locations")
	locations.Use(h.AuthMiddleware.Auth())
	{
		locations.GET("", h.LocationHandler.ListCities)
	}

	// ==================== Subscriptions ====================
	subscriptions := api.Group("/subscriptions")
	subscriptions.Use(h.AuthMiddleware.Auth())
	{
		subscriptions.GET("", h.SubscriptionHandler.ListSubscriptions)
		subscriptions.POST("", h.SubscriptionHandler.CreateSubscription)
		subscriptions.PUT("/:id", h.SubscriptionHandler.UpdateSubscription)
		subscriptions.DELETE("/:id", h.SubscriptionHandler.DeleteSubscription)
	}

	// ==================== Trips ====================
	trips := api.Group("/trips")
	{
		// Attaching and removing found trips is administrative.
		tripsAdmin := trips.Group("")
		tripsAdmin.Use(h.AuthMiddleware.AdminOnly()...)
		{
			tripsAdmin.POST("", h.TripHandler.CreateTrip)
			tripsAdmin.DELETE("/:id", h.TripHandler.DeleteTrip)
		}

		tripsAuth := trips.Group("")
		tripsAuth.Use(h.AuthMiddleware.Auth())
		{
			tripsAuth.GET("/subscription/:subscriptionId", h.TripHandler.ListTripsBySubscription)
		}
	}
}

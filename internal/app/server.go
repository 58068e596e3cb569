// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"tripalert-gateway/internal/config"
	"tripalert-gateway/internal/db"
	locationHandler "tripalert-gateway/internal/handlers/location"
	subscriptionHandler "tripalert-gateway/internal/handlers/subscription"
	tripHandler "tripalert-gateway/internal/handlers/trip"
	"tripalert-gateway/internal/metrics"
	"tripalert-gateway/internal/middleware"
	"tripalert-gateway/internal/pkg/session"
	"tripalert-gateway/internal/proxy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	// Built here so Shutdown always has a server to drain, even when a
	// signal races Start.
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}
	return &Server{cfg: cfg, engine: engine, http: httpServer}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis (session store written by the identity provider) -----
	redisClient, err := db.NewSessionClient(db.RedisConfig{
		ClusterMode: s.cfg.RedisCluster,
		Addresses:   s.cfg.RedisAddrs,
		Password:    s.cfg.RedisPass,
		DB:          s.cfg.RedisDB,
		PoolSize:    10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- Metrics -----
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	gatewayMetrics := metrics.NewGatewayMetrics(registry)

	// ----- Session Manager -----
	sessionStore := session.NewRedisStore(redisClient)
	sessionManager := session.NewManager(sessionStore)

	// ----- Backend Proxy -----
	backend := proxy.NewClient(s.cfg.BackendURL, logger, gatewayMetrics)

	// ----- Handlers -----
	subscriptionHandlerInst := subscriptionHandler.NewSubscriptionHandler(backend, logger)
	tripHandlerInst := tripHandler.NewTripHandler(backend, logger)
	locationHandlerInst := locationHandler.NewLocationHandler(logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessionManager, s.cfg.SessionCookie, logger, gatewayMetrics)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger, gatewayMetrics),
		cors.New(corsConfig),
	)

	// ----- Router -----
	handlers := &Handlers{
		SubscriptionHandler: subscriptionHandlerInst,
		TripHandler:         tripHandlerInst,
		LocationHandler:     locationHandlerInst,
		AuthMiddleware:      authMiddleware,
	}
	SetupRouter(s.engine, registry, handlers)

	// ----- Start HTTP -----
	log.Printf("gateway listening on %s, forwarding to %s", s.cfg.HTTPAddr, s.cfg.BackendURL)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

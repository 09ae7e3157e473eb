package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/config"
	"github.com/lucybridge/subscription-api/internal/constants"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/handlers"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/middleware"
	"github.com/lucybridge/subscription-api/internal/services"
)

// Server wires the database, services and HTTP routes together.
type Server struct {
	cfg    *config.Config
	pool   *pgxpool.Pool
	router *gin.Engine
	logger *zap.Logger

	subscriptionHandler *handlers.SubscriptionHandler
	paymentHandler      *handlers.PaymentHandler
	adminHandler        *handlers.AdminHandler
	healthHandler       *handlers.HealthHandler
	auth                *middleware.AuthClient
}

// New connects the database pool and builds the full handler graph.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database connection string: %w", err)
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	queries := db.New(pool)

	gateway := chapa.NewClient(cfg.Chapa.BaseURL, cfg.Chapa.SecretKey, metrics.NewGatewayCollector())
	pricing := services.NewPricingCalculator(cfg.DiscountTable())
	cohorts := services.NewCohortService(queries, cfg.Cohorts)
	notifier := services.NewNotificationService(cfg.Email, cfg.SiteName)

	subscriptions := services.NewSubscriptionService(
		queries, pricing, cohorts, notifier, gateway,
		cfg.BaseURL, cfg.Features.PlanChangeAudit,
	)
	payments := services.NewPaymentService(queries, pool, gateway, subscriptions, cfg.Chapa.WebhookSecret)

	common := handlers.NewCommonServices(queries)

	s := &Server{
		cfg:                 cfg,
		pool:                pool,
		logger:              logger.Log,
		subscriptionHandler: handlers.NewSubscriptionHandler(common, subscriptions, pricing),
		paymentHandler:      handlers.NewPaymentHandler(common, payments),
		adminHandler:        handlers.NewAdminHandler(common, subscriptions),
		healthHandler:       handlers.NewHealthHandler(),
		auth:                middleware.NewAuthClient(cfg.JWTSecret),
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(s.cfg.CORSAllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())

	router.GET("/health", s.healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The gateway signs its own deliveries; no session auth here.
	router.POST("/webhooks/chapa", s.paymentHandler.HandleChapaWebhook)

	v1 := router.Group("/api/v1")
	v1.GET("/plans", s.subscriptionHandler.ListPlans)
	v1.GET("/plans/:plan_id/price", s.subscriptionHandler.QuotePlanPrice)

	authed := v1.Group("")
	authed.Use(s.auth.AuthMiddleware())
	{
		authed.POST("/subscriptions", s.subscriptionHandler.CreateSubscription)
		authed.GET("/subscriptions/current", s.subscriptionHandler.GetCurrentSubscription)
		authed.POST("/subscriptions/:subscription_id/cancel", s.subscriptionHandler.CancelSubscription)
		authed.POST("/subscriptions/:subscription_id/upgrade", s.subscriptionHandler.UpgradeSubscription)
		authed.POST("/subscriptions/:subscription_id/downgrade", s.subscriptionHandler.ScheduleDowngrade)
		authed.DELETE("/downgrades/:subscription_id", s.subscriptionHandler.CancelDowngrade)
		authed.GET("/payments", s.subscriptionHandler.ListPayments)
		authed.GET("/payments/:payment_id/verify", s.paymentHandler.VerifyPayment)
	}

	admin := v1.Group("/admin")
	admin.Use(s.auth.AuthMiddleware(), s.auth.AdminMiddleware())
	{
		admin.POST("/subscriptions/:subscription_id/activate", s.adminHandler.ActivateSubscription)
		admin.POST("/subscriptions/:subscription_id/plan", s.adminHandler.ChangePlan)
		admin.POST("/subscriptions/:subscription_id/cancel", s.adminHandler.CancelSubscription)
		admin.GET("/stats", s.adminHandler.Stats)
	}

	return router
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP until the context is cancelled, then drains in-flight
// requests before closing the pool.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTPPort),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.Int("port", s.cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.pool.Close()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.pool.Close()
		return fmt.Errorf("forced shutdown: %w", err)
	}
	s.pool.Close()
	return nil
}

func configureCORS(allowedOrigins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(allowedOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := make([]string, len(allowedOrigins))
		for i, origin := range allowedOrigins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = true

	return cors.New(corsConfig)
}

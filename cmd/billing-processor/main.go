package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/config"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/helpers"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/processor"
	"github.com/lucybridge/subscription-api/internal/services"
)

// pendingPaymentMaxAge is how long a payment may sit pending before the
// sweep re-verifies it against the gateway.
const pendingPaymentMaxAge = time.Hour

// Application holds all dependencies for a sweep run.
type Application struct {
	expiry    *processor.ExpiryProcessor
	reminders *processor.ReminderProcessor
	payments  *services.PaymentService
	logger    *zap.Logger
}

// RunOnce executes a single pass of every scheduled job. Each job is
// independent; a failure in one does not stop the others.
func (app *Application) RunOnce(ctx context.Context) {
	app.logger.Info("Starting billing sweep")

	expiryResults, err := app.expiry.ProcessExpiredSubscriptions(ctx)
	if err != nil {
		app.logger.Error("Error processing expired subscriptions", zap.Error(err))
	} else {
		app.logger.Info("Expiry sweep results",
			zap.Int("total", expiryResults.Total),
			zap.Int("expired", expiryResults.Expired),
			zap.Int("downgraded", expiryResults.Downgraded),
			zap.Int("errored", expiryResults.Errored),
		)
	}

	reminderResults, err := app.reminders.ProcessRenewalReminders(ctx)
	if err != nil {
		app.logger.Error("Error processing renewal reminders", zap.Error(err))
	} else {
		app.logger.Info("Reminder sweep results",
			zap.Int("total", reminderResults.Total),
			zap.Int("sent", reminderResults.Sent),
			zap.Int("skipped", reminderResults.Skipped),
			zap.Int("errored", reminderResults.Errored),
		)
	}

	succeeded, failed, err := app.payments.ReconcilePendingPayments(ctx, pendingPaymentMaxAge)
	if err != nil {
		app.logger.Error("Error reconciling pending payments", zap.Error(err))
	} else {
		app.logger.Info("Payment reconciliation results",
			zap.Int("succeeded", succeeded),
			zap.Int("failed", failed),
		)
	}
}

func main() {
	once := flag.Bool("once", false, "run a single sweep pass and exit")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	queries := db.New(pool)

	gateway := chapa.NewClient(cfg.Chapa.BaseURL, cfg.Chapa.SecretKey, metrics.NewGatewayCollector())
	pricing := services.NewPricingCalculator(cfg.DiscountTable())
	cohorts := services.NewCohortService(queries, cfg.Cohorts)
	notifier := services.NewNotificationService(cfg.Email, cfg.SiteName)
	subscriptions := services.NewSubscriptionService(
		queries, pricing, cohorts, notifier, gateway, cfg.BaseURL, cfg.Features.PlanChangeAudit)
	payments := services.NewPaymentService(
		queries, pool, gateway, subscriptions, cfg.Chapa.WebhookSecret)

	app := &Application{
		expiry:    processor.NewExpiryProcessor(queries, cohorts, notifier),
		reminders: processor.NewReminderProcessor(queries, notifier, pricing, cfg.Sweeps),
		payments:  payments,
		logger:    logger.Log,
	}

	if *once {
		app.RunOnce(ctx)
		return
	}

	logger.Info("Billing processor started",
		zap.String("stage", stage),
		zap.Duration("interval", cfg.Sweeps.Interval),
	)

	ticker := time.NewTicker(cfg.Sweeps.Interval)
	defer ticker.Stop()

	app.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Billing processor shutting down")
			return
		case <-ticker.C:
			app.RunOnce(ctx)
		}
	}
}

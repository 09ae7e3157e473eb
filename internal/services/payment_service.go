package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/helpers"
	"github.com/lucybridge/subscription-api/internal/logger"
)

// PaymentService reconciles gateway state with our records. Webhooks
// and the return-URL poll both funnel through the same verify-then-
// confirm path, so either side can arrive first or twice.
type PaymentService struct {
	queries       db.Querier
	pool          *pgxpool.Pool
	gateway       IGatewayClient
	subscriptions *SubscriptionService
	webhookSecret string
	logger        *zap.Logger
}

// NewPaymentService creates a new payment service. pool may be nil in
// tests, in which case confirmations run without a wrapping
// transaction.
func NewPaymentService(
	queries db.Querier,
	pool *pgxpool.Pool,
	gateway IGatewayClient,
	subscriptions *SubscriptionService,
	webhookSecret string,
) *PaymentService {
	return &PaymentService{
		queries:       queries,
		pool:          pool,
		gateway:       gateway,
		subscriptions: subscriptions,
		webhookSecret: webhookSecret,
		logger:        logger.Log,
	}
}

// HandleWebhook processes a gateway webhook delivery. A bad signature is
// the only caller-visible error; malformed or foreign payloads are
// dropped after logging, since the gateway retries on non-200 and a
// permanently broken payload would retry forever.
func (ps *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if signature == "" {
		ps.logger.Warn("webhook without signature header dropped")
		return nil
	}
	if !chapa.VerifySignature(ps.webhookSecret, body, signature) {
		return ErrInvalidSignature
	}

	var event chapa.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		ps.logger.Warn("undecodable webhook body dropped", zap.Error(err))
		return nil
	}
	if event.TxRef == "" {
		ps.logger.Warn("webhook without tx_ref dropped", zap.String("event", event.Event))
		return nil
	}

	if _, err := chapa.ParseTxRef(event.TxRef); err != nil {
		ps.logger.Warn("webhook with foreign tx_ref dropped",
			zap.String("tx_ref", event.TxRef), zap.Error(err))
		return nil
	}

	// The webhook body is a hint; the verify endpoint is authoritative.
	result, err := ps.gateway.VerifyTransaction(ctx, event.TxRef)
	if err != nil {
		ps.logger.Error("webhook verification against gateway failed, leaving payment pending",
			zap.String("tx_ref", event.TxRef), zap.Error(err))
		return nil
	}

	if err := ps.confirm(ctx, result); err != nil {
		ps.logger.Error("failed to apply verified webhook",
			zap.String("tx_ref", event.TxRef), zap.Error(err))
		return nil
	}

	ps.logger.Info("webhook applied",
		zap.String("tx_ref", event.TxRef),
		zap.String("status", result.Status))
	return nil
}

// VerifyPending is the return-URL polling path: the learner lands back
// from checkout and we verify their payment on the spot. Ownership is
// enforced for plain learner sessions only; privileged callers may
// verify any payment.
func (ps *PaymentService) VerifyPending(ctx context.Context, paymentID, callerID uuid.UUID, privileged bool) (db.Payment, error) {
	payment, err := ps.queries.GetPayment(ctx, paymentID)
	if err != nil {
		return db.Payment{}, mapNotFound(err, "payment")
	}
	sub, err := ps.queries.GetSubscription(ctx, payment.SubscriptionID)
	if err != nil {
		return db.Payment{}, mapNotFound(err, "subscription")
	}
	if !privileged && sub.UserID != callerID {
		return db.Payment{}, ErrOwnershipMismatch
	}

	if payment.Status != db.PaymentStatusPending {
		return payment, nil
	}

	result, err := ps.gateway.VerifyTransaction(ctx, payment.TxRef)
	if err != nil {
		return db.Payment{}, fmt.Errorf("failed to verify payment %s: %w", payment.TxRef, err)
	}
	if err := ps.confirm(ctx, result); err != nil {
		return db.Payment{}, err
	}

	payment, err = ps.queries.GetPayment(ctx, paymentID)
	if err != nil {
		return db.Payment{}, mapNotFound(err, "payment")
	}
	return payment, nil
}

// ReconcilePendingPayments re-verifies payments stuck pending longer
// than maxAge, for deliveries the webhook never made. Per-item failures
// are logged and counted, never fatal.
func (ps *PaymentService) ReconcilePendingPayments(ctx context.Context, maxAge time.Duration) (int, int, error) {
	cutoff := pgtype.Timestamptz{Time: time.Now().Add(-maxAge), Valid: true}
	pending, err := ps.queries.ListPendingPayments(ctx, cutoff)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list pending payments: %w", err)
	}

	succeeded, failed := 0, 0
	for _, payment := range pending {
		result, err := ps.gateway.VerifyTransaction(ctx, payment.TxRef)
		if err != nil {
			ps.logger.Error("failed to verify stale pending payment",
				zap.String("tx_ref", payment.TxRef), zap.Error(err))
			failed++
			continue
		}
		if err := ps.confirm(ctx, result); err != nil {
			ps.logger.Error("failed to apply stale pending payment",
				zap.String("tx_ref", payment.TxRef), zap.Error(err))
			failed++
			continue
		}
		succeeded++
	}
	return succeeded, failed, nil
}

// confirm applies a verified result inside a transaction so the payment
// and subscription rows move together.
func (ps *PaymentService) confirm(ctx context.Context, result *chapa.VerifyResult) error {
	if ps.pool == nil {
		return ps.subscriptions.ConfirmPayment(ctx, result)
	}
	return helpers.WithTransaction(ctx, ps.pool, func(tx pgx.Tx) error {
		return ps.subscriptions.WithTransaction(tx).ConfirmPayment(ctx, result)
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/constants"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
)

// SubscriptionService owns the subscription lifecycle: checkout,
// activation, plan changes, cancellation. Every state transition writes
// a subscription_logs row; access-group reconciliation and notifications
// follow the transition and never veto it.
type SubscriptionService struct {
	queries          db.Querier
	pricing          IPricingCalculator
	cohorts          ICohortService
	notifier         INotificationService
	gateway          IGatewayClient
	baseURL          string
	auditPlanChanges bool
	logger           *zap.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(
	queries db.Querier,
	pricing IPricingCalculator,
	cohorts ICohortService,
	notifier INotificationService,
	gateway IGatewayClient,
	baseURL string,
	auditPlanChanges bool,
) *SubscriptionService {
	return &SubscriptionService{
		queries:          queries,
		pricing:          pricing,
		cohorts:          cohorts,
		notifier:         notifier,
		gateway:          gateway,
		baseURL:          baseURL,
		auditPlanChanges: auditPlanChanges,
		logger:           logger.Log,
	}
}

// WithTransaction creates a service instance bound to transaction-based
// queries. The collaborators are shared with the parent.
func (s *SubscriptionService) WithTransaction(tx pgx.Tx) *SubscriptionService {
	return &SubscriptionService{
		queries:          db.New(tx),
		pricing:          s.pricing,
		cohorts:          s.cohorts,
		notifier:         s.notifier,
		gateway:          s.gateway,
		baseURL:          s.baseURL,
		auditPlanChanges: s.auditPlanChanges,
		logger:           s.logger,
	}
}

// CheckoutSession is what the caller needs to send a learner to the
// hosted payment page.
type CheckoutSession struct {
	SubscriptionID uuid.UUID      `json:"subscription_id"`
	PaymentID      uuid.UUID      `json:"payment_id"`
	TxRef          string         `json:"tx_ref"`
	Breakdown      PriceBreakdown `json:"breakdown"`
	CheckoutURL    string         `json:"checkout_url"`
}

// StartCheckout creates a pending subscription plus its pending payment
// and opens a hosted checkout session for it.
func (s *SubscriptionService) StartCheckout(ctx context.Context, userID, planID uuid.UUID, months int) (*CheckoutSession, error) {
	user, err := s.queries.GetUser(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "user")
	}
	plan, err := s.getActivePlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	breakdown := s.pricing.ComputePrice(plan.MonthlyPriceCents, months)

	sub, err := s.queries.CreateSubscription(ctx, db.CreateSubscriptionParams{
		UserID:         userID,
		PlanID:         plan.ID,
		Status:         db.SubscriptionStatusPending,
		DurationMonths: int32(breakdown.Months),
		AutoRenew:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return s.openCheckout(ctx, user, sub, plan, breakdown, db.PaymentTypeNew, pgtype.UUID{})
}

// StartUpgrade opens a checkout session charging the rate difference to
// a higher tier for the rest of the current period. The plan change only
// applies when the payment settles.
func (s *SubscriptionService) StartUpgrade(ctx context.Context, userID, subscriptionID, targetPlanID uuid.UUID) (*CheckoutSession, error) {
	sub, err := s.getOwnedSubscription(ctx, subscriptionID, userID, false)
	if err != nil {
		return nil, err
	}
	if sub.Status != db.SubscriptionStatusActive {
		return nil, ErrNotActive
	}

	current, err := s.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return nil, mapNotFound(err, "current plan")
	}
	target, err := s.getActivePlan(ctx, targetPlanID)
	if err != nil {
		return nil, err
	}
	if target.TierRank <= current.TierRank {
		return nil, ErrNoHigherTier
	}

	user, err := s.queries.GetUser(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "user")
	}

	remaining := remainingMonths(sub.PeriodEnd, time.Now())
	breakdown := s.pricing.ComputeUpgradePrice(current.MonthlyPriceCents, target.MonthlyPriceCents, remaining)

	return s.openCheckout(ctx, user, sub, target, breakdown, db.PaymentTypeUpgrade,
		pgtype.UUID{Bytes: target.ID, Valid: true})
}

func (s *SubscriptionService) openCheckout(
	ctx context.Context,
	user db.User,
	sub db.Subscription,
	plan db.Plan,
	breakdown PriceBreakdown,
	paymentType db.PaymentType,
	targetPlanID pgtype.UUID,
) (*CheckoutSession, error) {
	txRef := chapa.NewTxRef(sub.ID, time.Now().UnixNano())

	payment, err := s.queries.CreatePayment(ctx, db.CreatePaymentParams{
		SubscriptionID:  sub.ID,
		TxRef:           txRef.String(),
		AmountCents:     breakdown.FinalCents,
		Currency:        plan.Currency,
		Months:          int32(breakdown.Months),
		DiscountPercent: int32(breakdown.DiscountPercent),
		Status:          db.PaymentStatusPending,
		PaymentType:     paymentType,
		TargetPlanID:    targetPlanID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	checkoutURL, err := s.gateway.InitializePayment(ctx, chapa.InitializeRequest{
		Amount:      chapa.FormatAmount(breakdown.FinalCents),
		Currency:    plan.Currency,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		TxRef:       txRef.String(),
		CallbackURL: s.baseURL + "/webhooks/chapa",
		ReturnURL:   fmt.Sprintf("%s/api/v1/payments/%s/verify", s.baseURL, payment.ID),
	})
	if err != nil {
		if _, failErr := s.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
			ID:     payment.ID,
			Status: db.PaymentStatusFailed,
		}); failErr != nil {
			s.logger.Error("failed to mark payment failed after gateway error",
				zap.Error(failErr), zap.String("payment_id", payment.ID.String()))
		}
		return nil, fmt.Errorf("failed to initialize checkout: %w", err)
	}

	s.logAction(ctx, sub.ID, user.ID, constants.ActionSubscribe,
		fmt.Sprintf("checkout opened: %s payment of %d cents for plan %s", paymentType, breakdown.FinalCents, plan.ShortCode))

	return &CheckoutSession{
		SubscriptionID: sub.ID,
		PaymentID:      payment.ID,
		TxRef:          txRef.String(),
		Breakdown:      breakdown,
		CheckoutURL:    checkoutURL,
	}, nil
}

// ConfirmPayment applies a verified gateway result exactly once. The
// payment row is locked first, so the webhook and the return-URL poll
// can race freely; the loser sees a completed payment and returns.
// Callers run this inside a transaction via WithTransaction.
func (s *SubscriptionService) ConfirmPayment(ctx context.Context, result *chapa.VerifyResult) error {
	ref, err := chapa.ParseTxRef(result.TxRef)
	if err != nil {
		return err
	}

	payment, err := s.queries.GetPaymentByTxRefForUpdate(ctx, result.TxRef)
	if err != nil {
		return mapNotFound(err, "payment")
	}
	if payment.Status == db.PaymentStatusCompleted {
		s.logger.Info("payment already applied, skipping",
			zap.String("tx_ref", result.TxRef))
		return nil
	}

	if !result.Succeeded() {
		return s.recordFailedPayment(ctx, payment, result)
	}

	now := time.Now()
	payment, err = s.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
		ID:               payment.ID,
		Status:           db.PaymentStatusCompleted,
		GatewayReference: pgtype.Text{String: result.Reference, Valid: result.Reference != ""},
		PaidAt:           pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark payment completed: %w", err)
	}
	metrics.PaymentsConfirmed.WithLabelValues(string(payment.PaymentType), string(db.PaymentStatusCompleted)).Inc()

	sub, err := s.queries.GetSubscriptionForUpdate(ctx, ref.SubscriptionID)
	if err != nil {
		return mapNotFound(err, "subscription")
	}

	switch payment.PaymentType {
	case db.PaymentTypeUpgrade:
		return s.applyUpgradePayment(ctx, sub, payment)
	default:
		return s.activateSubscription(ctx, sub, payment, now)
	}
}

func (s *SubscriptionService) recordFailedPayment(ctx context.Context, payment db.Payment, result *chapa.VerifyResult) error {
	if payment.Status == db.PaymentStatusFailed {
		return nil
	}
	if _, err := s.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
		ID:               payment.ID,
		Status:           db.PaymentStatusFailed,
		GatewayReference: pgtype.Text{String: result.Reference, Valid: result.Reference != ""},
	}); err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	metrics.PaymentsConfirmed.WithLabelValues(string(payment.PaymentType), string(db.PaymentStatusFailed)).Inc()

	sub, err := s.queries.GetSubscription(ctx, payment.SubscriptionID)
	if err != nil {
		return mapNotFound(err, "subscription")
	}

	// A failed first payment abandons the pending subscription.
	if payment.PaymentType == db.PaymentTypeNew && sub.Status == db.SubscriptionStatusPending {
		if _, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
			ID:         sub.ID,
			Status:     db.SubscriptionStatusCanceled,
			CanceledAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}); err != nil {
			return fmt.Errorf("failed to cancel pending subscription: %w", err)
		}
	}

	s.notify(ctx, sub, payment.AmountCents, s.notifier.SendRenewalFailed)
	s.logAction(ctx, sub.ID, sub.UserID, constants.ActionCancel,
		fmt.Sprintf("payment %s failed at gateway", payment.TxRef))
	return nil
}

func (s *SubscriptionService) activateSubscription(ctx context.Context, sub db.Subscription, payment db.Payment, now time.Time) error {
	// A renewal while still active extends from the current period end
	// instead of stacking from today.
	start := now
	if sub.Status == db.SubscriptionStatusActive && sub.PeriodEnd.Valid && sub.PeriodEnd.Time.After(now) {
		start = sub.PeriodEnd.Time
	}
	end := start.AddDate(0, int(sub.DurationMonths), 0)

	updated, err := s.queries.UpdateSubscriptionPeriod(ctx, db.UpdateSubscriptionPeriodParams{
		ID:             sub.ID,
		Status:         db.SubscriptionStatusActive,
		DurationMonths: sub.DurationMonths,
		PeriodStart:    pgtype.Timestamptz{Time: start, Valid: true},
		PeriodEnd:      pgtype.Timestamptz{Time: end, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}

	plan, err := s.queries.GetPlan(ctx, updated.PlanID)
	if err != nil {
		return mapNotFound(err, "plan")
	}
	if err := s.cohorts.ReconcileAccess(ctx, updated.UserID, plan.TierRank); err != nil {
		return fmt.Errorf("failed to reconcile access: %w", err)
	}

	s.notify(ctx, updated, payment.AmountCents, s.notifier.SendReceipt)
	s.logAction(ctx, updated.ID, updated.UserID, constants.ActionSubscribe,
		fmt.Sprintf("payment %s settled, active until %s", payment.TxRef, end.Format(time.RFC3339)))
	return nil
}

func (s *SubscriptionService) applyUpgradePayment(ctx context.Context, sub db.Subscription, payment db.Payment) error {
	if !payment.TargetPlanID.Valid {
		return fmt.Errorf("upgrade payment %s has no target plan", payment.ID)
	}
	targetID := uuid.UUID(payment.TargetPlanID.Bytes)

	updated, err := s.queries.UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{
		ID:     sub.ID,
		PlanID: targetID,
	})
	if err != nil {
		return fmt.Errorf("failed to apply upgrade: %w", err)
	}

	target, err := s.queries.GetPlan(ctx, targetID)
	if err != nil {
		return mapNotFound(err, "target plan")
	}
	if err := s.cohorts.ReconcileAccess(ctx, updated.UserID, target.TierRank); err != nil {
		return fmt.Errorf("failed to reconcile access: %w", err)
	}

	s.notify(ctx, updated, payment.AmountCents, s.notifier.SendReceipt)
	s.logAction(ctx, updated.ID, updated.UserID, constants.ActionUpgrade,
		fmt.Sprintf("upgraded to %s via payment %s", target.ShortCode, payment.TxRef))
	return nil
}

// AdminActivate activates a subscription without a payment, starting a
// fresh period today. months <= 0 reuses the stored duration.
func (s *SubscriptionService) AdminActivate(ctx context.Context, adminID, subscriptionID uuid.UUID, months int) (db.Subscription, error) {
	sub, err := s.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return db.Subscription{}, mapNotFound(err, "subscription")
	}
	if months <= 0 {
		months = int(sub.DurationMonths)
	}

	now := time.Now()
	updated, err := s.queries.UpdateSubscriptionPeriod(ctx, db.UpdateSubscriptionPeriodParams{
		ID:             sub.ID,
		Status:         db.SubscriptionStatusActive,
		DurationMonths: int32(months),
		PeriodStart:    pgtype.Timestamptz{Time: now, Valid: true},
		PeriodEnd:      pgtype.Timestamptz{Time: now.AddDate(0, months, 0), Valid: true},
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to activate subscription: %w", err)
	}

	// Activation re-arms renewal even if the user had cancelled before.
	updated, err = s.queries.UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{
		ID:        sub.ID,
		AutoRenew: true,
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to re-enable auto renew: %w", err)
	}

	plan, err := s.queries.GetPlan(ctx, updated.PlanID)
	if err != nil {
		return db.Subscription{}, mapNotFound(err, "plan")
	}
	if err := s.cohorts.ReconcileAccess(ctx, updated.UserID, plan.TierRank); err != nil {
		return db.Subscription{}, fmt.Errorf("failed to reconcile access: %w", err)
	}

	s.logAction(ctx, updated.ID, updated.UserID, constants.ActionAdminActivate,
		fmt.Sprintf("activated for %d months by admin %s", months, adminID))
	return updated, nil
}

// AdminChangePlan switches a subscription's plan immediately. Any
// scheduled downgrade is superseded and cleared.
func (s *SubscriptionService) AdminChangePlan(ctx context.Context, adminID, subscriptionID, newPlanID uuid.UUID, reason string) (db.Subscription, error) {
	sub, err := s.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return db.Subscription{}, mapNotFound(err, "subscription")
	}
	target, err := s.getActivePlan(ctx, newPlanID)
	if err != nil {
		return db.Subscription{}, err
	}

	updated, err := s.queries.UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{
		ID:     sub.ID,
		PlanID: target.ID,
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to change plan: %w", err)
	}

	updated, err = s.queries.UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{
		ID:        sub.ID,
		AutoRenew: true,
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to re-enable auto renew: %w", err)
	}

	cleared, err := s.queries.CancelPendingDowngrades(ctx, sub.ID)
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to clear pending downgrades: %w", err)
	}
	if cleared > 0 {
		s.logger.Info("cleared scheduled downgrade superseded by admin plan change",
			zap.String("subscription_id", sub.ID.String()))
	}

	if s.auditPlanChanges {
		if _, err := s.queries.CreatePlanChangeAudit(ctx, db.CreatePlanChangeAuditParams{
			SubscriptionID: sub.ID,
			FromPlanID:     sub.PlanID,
			ToPlanID:       target.ID,
			ChangedBy:      adminID,
			Reason:         pgtype.Text{String: reason, Valid: reason != ""},
		}); err != nil {
			return db.Subscription{}, fmt.Errorf("failed to write plan change audit: %w", err)
		}
	}

	if updated.Status == db.SubscriptionStatusActive {
		if err := s.cohorts.ReconcileAccess(ctx, updated.UserID, target.TierRank); err != nil {
			return db.Subscription{}, fmt.Errorf("failed to reconcile access: %w", err)
		}
	}

	s.logAction(ctx, updated.ID, updated.UserID, constants.ActionAdminChangePlan,
		fmt.Sprintf("plan changed to %s by admin %s: %s", target.ShortCode, adminID, reason))
	return updated, nil
}

// ScheduleDowngrade books a move to a lower tier at the end of the
// current period. If the period has already lapsed the downgrade is
// applied immediately.
func (s *SubscriptionService) ScheduleDowngrade(ctx context.Context, userID, subscriptionID, targetPlanID uuid.UUID) (db.DowngradeRequest, error) {
	sub, err := s.getOwnedSubscription(ctx, subscriptionID, userID, false)
	if err != nil {
		return db.DowngradeRequest{}, err
	}
	if sub.Status != db.SubscriptionStatusActive {
		return db.DowngradeRequest{}, ErrNotActive
	}

	current, err := s.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return db.DowngradeRequest{}, mapNotFound(err, "current plan")
	}
	target, err := s.getActivePlan(ctx, targetPlanID)
	if err != nil {
		return db.DowngradeRequest{}, err
	}
	if target.TierRank >= current.TierRank {
		return db.DowngradeRequest{}, ErrNoLowerTier
	}

	if _, err := s.queries.GetPendingDowngradeBySubscription(ctx, sub.ID); err == nil {
		return db.DowngradeRequest{}, ErrAlreadyScheduled
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return db.DowngradeRequest{}, fmt.Errorf("failed to check pending downgrades: %w", err)
	}

	now := time.Now()
	effectiveAt := now
	if sub.PeriodEnd.Valid && sub.PeriodEnd.Time.After(now) {
		effectiveAt = sub.PeriodEnd.Time
	}

	request, err := s.queries.CreateDowngradeRequest(ctx, db.CreateDowngradeRequestParams{
		SubscriptionID: sub.ID,
		FromPlanID:     current.ID,
		ToPlanID:       target.ID,
		EffectiveAt:    pgtype.Timestamptz{Time: effectiveAt, Valid: true},
	})
	if err != nil {
		return db.DowngradeRequest{}, fmt.Errorf("failed to create downgrade request: %w", err)
	}

	// Period already over: apply on the spot instead of waiting for the
	// sweep.
	if !effectiveAt.After(now) {
		if _, err := s.queries.UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{
			ID:     sub.ID,
			PlanID: target.ID,
		}); err != nil {
			return db.DowngradeRequest{}, fmt.Errorf("failed to apply downgrade: %w", err)
		}
		request, err = s.queries.MarkDowngradeApplied(ctx, db.MarkDowngradeAppliedParams{
			ID:        request.ID,
			AppliedAt: pgtype.Timestamptz{Time: now, Valid: true},
		})
		if err != nil {
			return db.DowngradeRequest{}, fmt.Errorf("failed to mark downgrade applied: %w", err)
		}
		if err := s.cohorts.ReconcileAccess(ctx, sub.UserID, target.TierRank); err != nil {
			return db.DowngradeRequest{}, fmt.Errorf("failed to reconcile access: %w", err)
		}
	}

	s.logAction(ctx, sub.ID, userID, constants.ActionDowngrade,
		fmt.Sprintf("downgrade to %s effective %s", target.ShortCode, effectiveAt.Format(time.RFC3339)))
	return request, nil
}

// CancelDowngrade removes a scheduled downgrade before it applies.
func (s *SubscriptionService) CancelDowngrade(ctx context.Context, userID, subscriptionID uuid.UUID) error {
	sub, err := s.getOwnedSubscription(ctx, subscriptionID, userID, false)
	if err != nil {
		return err
	}

	cleared, err := s.queries.CancelPendingDowngrades(ctx, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to cancel downgrade: %w", err)
	}
	if cleared == 0 {
		return ErrNotFound
	}

	s.logAction(ctx, sub.ID, userID, constants.ActionCancelDowngrade, "scheduled downgrade cancelled")
	return nil
}

// CancelAtPeriodEnd turns off auto-renewal; access continues until the
// period ends and the expiry sweep picks the subscription up.
func (s *SubscriptionService) CancelAtPeriodEnd(ctx context.Context, userID, subscriptionID uuid.UUID, reason string) (db.Subscription, error) {
	sub, err := s.getOwnedSubscription(ctx, subscriptionID, userID, false)
	if err != nil {
		return db.Subscription{}, err
	}
	if sub.Status != db.SubscriptionStatusActive {
		return db.Subscription{}, ErrNotActive
	}

	updated, err := s.queries.UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{
		ID:        sub.ID,
		AutoRenew: false,
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to disable auto renew: %w", err)
	}

	if _, err := s.queries.CreateCancellation(ctx, db.CreateCancellationParams{
		SubscriptionID: sub.ID,
		UserID:         userID,
		Reason:         pgtype.Text{String: reason, Valid: reason != ""},
		Immediate:      false,
	}); err != nil {
		return db.Subscription{}, fmt.Errorf("failed to record cancellation: %w", err)
	}

	s.logAction(ctx, sub.ID, userID, constants.ActionCancel, "cancellation at period end: "+reason)
	return updated, nil
}

// CancelImmediate ends a subscription now and reverts access to the
// free preview. Admin operation.
func (s *SubscriptionService) CancelImmediate(ctx context.Context, adminID, subscriptionID uuid.UUID, reason string) (db.Subscription, error) {
	sub, err := s.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return db.Subscription{}, mapNotFound(err, "subscription")
	}

	now := time.Now()
	updated, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:         sub.ID,
		Status:     db.SubscriptionStatusCanceled,
		CanceledAt: pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if _, err := s.queries.CancelPendingDowngrades(ctx, sub.ID); err != nil {
		return db.Subscription{}, fmt.Errorf("failed to clear pending downgrades: %w", err)
	}

	if _, err := s.queries.CreateCancellation(ctx, db.CreateCancellationParams{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		Reason:         pgtype.Text{String: reason, Valid: reason != ""},
		Immediate:      true,
	}); err != nil {
		return db.Subscription{}, fmt.Errorf("failed to record cancellation: %w", err)
	}

	if err := s.cohorts.ReconcileAccess(ctx, sub.UserID, 0); err != nil {
		return db.Subscription{}, fmt.Errorf("failed to reconcile access: %w", err)
	}

	s.logAction(ctx, sub.ID, sub.UserID, constants.ActionCancel,
		fmt.Sprintf("cancelled immediately by admin %s: %s", adminID, reason))
	return updated, nil
}

// GetCurrentSubscription returns the caller's active subscription and
// its plan.
func (s *SubscriptionService) GetCurrentSubscription(ctx context.Context, userID uuid.UUID) (db.Subscription, db.Plan, error) {
	sub, err := s.queries.GetActiveSubscriptionByUser(ctx, userID)
	if err != nil {
		return db.Subscription{}, db.Plan{}, mapNotFound(err, "subscription")
	}
	plan, err := s.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return db.Subscription{}, db.Plan{}, mapNotFound(err, "plan")
	}
	return sub, plan, nil
}

// ListPayments returns the caller's payment history, newest first.
func (s *SubscriptionService) ListPayments(ctx context.Context, userID uuid.UUID) ([]db.Payment, error) {
	payments, err := s.queries.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListPlans returns the purchasable plans in tier order.
func (s *SubscriptionService) ListPlans(ctx context.Context) ([]db.Plan, error) {
	plans, err := s.queries.ListActivePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// Stats returns aggregate subscription and revenue counts for the admin
// dashboard.
func (s *SubscriptionService) Stats(ctx context.Context) (db.GetSubscriptionStatsRow, error) {
	stats, err := s.queries.GetSubscriptionStats(ctx)
	if err != nil {
		return db.GetSubscriptionStatsRow{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

func (s *SubscriptionService) getOwnedSubscription(ctx context.Context, subscriptionID, callerID uuid.UUID, privileged bool) (db.Subscription, error) {
	sub, err := s.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return db.Subscription{}, mapNotFound(err, "subscription")
	}
	if !privileged && sub.UserID != callerID {
		return db.Subscription{}, ErrOwnershipMismatch
	}
	return sub, nil
}

func (s *SubscriptionService) getActivePlan(ctx context.Context, planID uuid.UUID) (db.Plan, error) {
	plan, err := s.queries.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Plan{}, ErrInvalidPlan
		}
		return db.Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}
	if !plan.Active {
		return db.Plan{}, ErrInvalidPlan
	}
	return plan, nil
}

// logAction appends a subscription_logs row. Audit writes never fail the
// surrounding operation.
func (s *SubscriptionService) logAction(ctx context.Context, subscriptionID, userID uuid.UUID, action, detail string) {
	if _, err := s.queries.CreateSubscriptionLog(ctx, db.CreateSubscriptionLogParams{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		Action:         action,
		Detail:         pgtype.Text{String: detail, Valid: detail != ""},
	}); err != nil {
		s.logger.Error("failed to write subscription log",
			zap.Error(err),
			zap.String("subscription_id", subscriptionID.String()),
			zap.String("action", action))
	}
}

// notify sends a templated email for the subscription's owner without
// failing the caller.
func (s *SubscriptionService) notify(ctx context.Context, sub db.Subscription, amountCents int64, send func(context.Context, NotificationParams) error) {
	user, err := s.queries.GetUser(ctx, sub.UserID)
	if err != nil {
		s.logger.Error("failed to load user for notification", zap.Error(err))
		return
	}
	plan, err := s.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		s.logger.Error("failed to load plan for notification", zap.Error(err))
		return
	}
	endDate := ""
	if sub.PeriodEnd.Valid {
		endDate = sub.PeriodEnd.Time.Format("2006-01-02")
	}
	if err := send(ctx, NotificationParams{
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PlanName:    plan.Name,
		AmountCents: amountCents,
		Currency:    plan.Currency,
		EndDate:     endDate,
	}); err != nil {
		s.logger.Error("failed to send notification", zap.Error(err),
			zap.String("subscription_id", sub.ID.String()))
	}
}

// mapNotFound converts pgx.ErrNoRows into the domain not-found error.
func mapNotFound(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// remainingMonths counts the whole months left until periodEnd, rounding
// partial months up, with a floor of one.
func remainingMonths(periodEnd pgtype.Timestamptz, now time.Time) int {
	if !periodEnd.Valid || !periodEnd.Time.After(now) {
		return 1
	}
	months := 0
	t := now
	for t.Before(periodEnd.Time) {
		t = t.AddDate(0, 1, 0)
		months++
	}
	return months
}

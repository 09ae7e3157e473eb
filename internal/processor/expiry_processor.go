package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/constants"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/services"
)

// ExpiryProcessor sweeps active subscriptions whose paid period has
// elapsed. A subscription with a due pending downgrade moves onto the
// lower plan and stays active; auto-renew subscriptions are left alone
// for the payment webhook to renew; everything else is expired and
// dropped back to free preview access.
type ExpiryProcessor struct {
	queries  db.Querier
	cohorts  services.ICohortService
	notifier services.INotificationService
	logger   *zap.Logger
}

// NewExpiryProcessor creates a new expiry processor.
func NewExpiryProcessor(queries db.Querier, cohorts services.ICohortService, notifier services.INotificationService) *ExpiryProcessor {
	return &ExpiryProcessor{
		queries:  queries,
		cohorts:  cohorts,
		notifier: notifier,
		logger:   logger.Log,
	}
}

// ProcessingResults holds the results of an expiry sweep.
type ProcessingResults struct {
	Total           int
	Expired         int
	Downgraded      int
	AwaitingRenewal int
	Errored         int
}

type expiryOutcome int

const (
	outcomeExpired expiryOutcome = iota
	outcomeDowngraded
	outcomeAwaitingRenewal
)

// ProcessExpiredSubscriptions handles every active subscription whose
// period end has passed. Failures on one subscription are logged and
// counted without aborting the sweep.
func (p *ExpiryProcessor) ProcessExpiredSubscriptions(ctx context.Context) (*ProcessingResults, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: start, Valid: true}

	subs, err := p.queries.ListExpiredActiveSubscriptions(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	results := &ProcessingResults{Total: len(subs)}
	for _, sub := range subs {
		outcome, err := p.processOne(ctx, sub)
		if err != nil {
			results.Errored++
			metrics.SweepErrors.WithLabelValues("expiry").Inc()
			p.logger.Error("failed to process expired subscription",
				zap.String("subscription_id", sub.ID.String()),
				zap.Error(err))
			continue
		}
		switch outcome {
		case outcomeDowngraded:
			results.Downgraded++
			metrics.SweepProcessed.WithLabelValues("expiry", "downgraded").Inc()
		case outcomeAwaitingRenewal:
			results.AwaitingRenewal++
			metrics.SweepProcessed.WithLabelValues("expiry", "awaiting_renewal").Inc()
		default:
			results.Expired++
			metrics.SweepProcessed.WithLabelValues("expiry", "expired").Inc()
		}
	}

	metrics.SweepDuration.WithLabelValues("expiry").Observe(time.Since(start).Seconds())
	p.logger.Info("expiry sweep completed",
		zap.Int("total", results.Total),
		zap.Int("expired", results.Expired),
		zap.Int("downgraded", results.Downgraded),
		zap.Int("awaiting_renewal", results.AwaitingRenewal),
		zap.Int("errored", results.Errored))
	return results, nil
}

func (p *ExpiryProcessor) processOne(ctx context.Context, sub db.Subscription) (expiryOutcome, error) {
	downgrade, err := p.queries.GetPendingDowngradeBySubscription(ctx, sub.ID)
	switch {
	case err == nil:
		if downgradeDue(sub, downgrade) {
			return outcomeDowngraded, p.applyDowngrade(ctx, sub, downgrade)
		}
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return outcomeExpired, fmt.Errorf("failed to look up pending downgrade: %w", err)
	}

	// Renewal is driven by the payment webhook; the sweep never expires
	// a subscription that is still set to renew.
	if sub.AutoRenew {
		return outcomeAwaitingRenewal, nil
	}
	return outcomeExpired, p.expire(ctx, sub)
}

// downgradeDue reports whether the request is scheduled for the period
// that just elapsed. A request booked for a later period end, left over
// after a renewal extended the subscription, stays pending.
func downgradeDue(sub db.Subscription, downgrade db.DowngradeRequest) bool {
	if !downgrade.EffectiveAt.Valid || !sub.PeriodEnd.Valid {
		return true
	}
	return !downgrade.EffectiveAt.Time.After(sub.PeriodEnd.Time)
}

// applyDowngrade moves the subscription onto the requested lower plan
// and keeps it active. The period is not extended; the next renewal
// payment, charged at the lower rate, does that.
func (p *ExpiryProcessor) applyDowngrade(ctx context.Context, sub db.Subscription, downgrade db.DowngradeRequest) error {
	target, err := p.queries.GetPlan(ctx, downgrade.ToPlanID)
	if err != nil {
		return fmt.Errorf("failed to load downgrade target plan: %w", err)
	}

	updated, err := p.queries.UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{
		ID:     sub.ID,
		PlanID: target.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to move subscription onto downgrade plan: %w", err)
	}

	if _, err := p.queries.MarkDowngradeApplied(ctx, db.MarkDowngradeAppliedParams{
		ID:        downgrade.ID,
		AppliedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}); err != nil {
		return fmt.Errorf("failed to mark downgrade applied: %w", err)
	}

	if err := p.cohorts.ReconcileAccess(ctx, sub.UserID, target.TierRank); err != nil {
		return fmt.Errorf("failed to reconcile access after downgrade: %w", err)
	}

	p.logAction(ctx, updated, constants.ActionDowngrade,
		fmt.Sprintf("downgraded to plan %s at period end", target.ShortCode))
	return nil
}

// expire marks the subscription expired and drops the user back to free
// preview access. The expiry notification is best effort.
func (p *ExpiryProcessor) expire(ctx context.Context, sub db.Subscription) error {
	updated, err := p.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     sub.ID,
		Status: db.SubscriptionStatusExpired,
	})
	if err != nil {
		return fmt.Errorf("failed to mark subscription expired: %w", err)
	}

	if err := p.cohorts.ReconcileAccess(ctx, sub.UserID, 0); err != nil {
		return fmt.Errorf("failed to revoke access for expired subscription: %w", err)
	}

	p.sendExpiredNotification(ctx, updated)
	p.logAction(ctx, updated, constants.ActionExpire, "subscription period elapsed")
	return nil
}

func (p *ExpiryProcessor) sendExpiredNotification(ctx context.Context, sub db.Subscription) {
	user, err := p.queries.GetUser(ctx, sub.UserID)
	if err != nil {
		p.logger.Error("failed to load user for expiry notification", zap.Error(err))
		return
	}
	plan, err := p.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		p.logger.Error("failed to load plan for expiry notification", zap.Error(err))
		return
	}
	endDate := ""
	if sub.PeriodEnd.Valid {
		endDate = sub.PeriodEnd.Time.Format("2006-01-02")
	}
	if err := p.notifier.SendSubscriptionExpired(ctx, services.NotificationParams{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		PlanName:  plan.Name,
		Currency:  plan.Currency,
		EndDate:   endDate,
	}); err != nil {
		p.logger.Error("failed to send expiry notification", zap.Error(err),
			zap.String("subscription_id", sub.ID.String()))
	}
}

func (p *ExpiryProcessor) logAction(ctx context.Context, sub db.Subscription, action, detail string) {
	if _, err := p.queries.CreateSubscriptionLog(ctx, db.CreateSubscriptionLogParams{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		Action:         action,
		Detail:         pgtype.Text{String: detail, Valid: detail != ""},
	}); err != nil {
		p.logger.Error("failed to write subscription log", zap.Error(err),
			zap.String("action", action))
	}
}

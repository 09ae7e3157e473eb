package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/config"
	"github.com/lucybridge/subscription-api/internal/constants"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/services"
)

// ReminderProcessor sends renewal reminders for auto-renewing
// subscriptions approaching their period end. The reminders table keys
// on (subscription, type, period end), so each billing period gets at
// most one reminder no matter how often the sweep runs.
type ReminderProcessor struct {
	queries  db.Querier
	notifier services.INotificationService
	pricing  services.IPricingCalculator
	cfg      config.SweepConfig
	logger   *zap.Logger
}

// NewReminderProcessor creates a new reminder processor.
func NewReminderProcessor(queries db.Querier, notifier services.INotificationService, pricing services.IPricingCalculator, cfg config.SweepConfig) *ReminderProcessor {
	return &ReminderProcessor{
		queries:  queries,
		notifier: notifier,
		pricing:  pricing,
		cfg:      cfg,
		logger:   logger.Log,
	}
}

// ReminderResults holds the results of a reminder sweep.
type ReminderResults struct {
	Total   int
	Sent    int
	Skipped int
	Errored int
}

// ProcessRenewalReminders reminds owners of auto-renewing subscriptions
// whose period end falls inside the reminder window. The dedup row is
// inserted before the email goes out, so a crashed send is never
// retried for the same period.
func (p *ReminderProcessor) ProcessRenewalReminders(ctx context.Context) (*ReminderResults, error) {
	start := time.Now()
	windowEnd := start.Add(p.cfg.ReminderLeadTime + p.cfg.ReminderTolerance)

	subs, err := p.queries.ListSubscriptionsDueForReminder(ctx, db.ListSubscriptionsDueForReminderParams{
		WindowStart: pgtype.Timestamptz{Time: start, Valid: true},
		WindowEnd:   pgtype.Timestamptz{Time: windowEnd, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions due for reminder: %w", err)
	}

	results := &ReminderResults{Total: len(subs)}
	for _, sub := range subs {
		sent, err := p.remindOne(ctx, sub)
		if err != nil {
			results.Errored++
			metrics.SweepErrors.WithLabelValues("reminder").Inc()
			p.logger.Error("failed to process renewal reminder",
				zap.String("subscription_id", sub.ID.String()),
				zap.Error(err))
			continue
		}
		if sent {
			results.Sent++
			metrics.SweepProcessed.WithLabelValues("reminder", "sent").Inc()
		} else {
			results.Skipped++
			metrics.SweepProcessed.WithLabelValues("reminder", "skipped").Inc()
		}
	}

	metrics.SweepDuration.WithLabelValues("reminder").Observe(time.Since(start).Seconds())
	p.logger.Info("reminder sweep completed",
		zap.Int("total", results.Total),
		zap.Int("sent", results.Sent),
		zap.Int("skipped", results.Skipped),
		zap.Int("errored", results.Errored))
	return results, nil
}

// remindOne reports whether a reminder was actually sent. A zero-row
// insert means this period was already reminded.
func (p *ReminderProcessor) remindOne(ctx context.Context, sub db.Subscription) (bool, error) {
	inserted, err := p.queries.CreateReminder(ctx, db.CreateReminderParams{
		SubscriptionID: sub.ID,
		ReminderType:   constants.ReminderTypeRenewal,
		PeriodEnd:      sub.PeriodEnd,
	})
	if err != nil {
		return false, fmt.Errorf("failed to record reminder: %w", err)
	}
	if inserted == 0 {
		return false, nil
	}

	user, err := p.queries.GetUser(ctx, sub.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to load user for reminder: %w", err)
	}
	plan, err := p.queries.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return false, fmt.Errorf("failed to load plan for reminder: %w", err)
	}

	endDate := ""
	if sub.PeriodEnd.Valid {
		endDate = sub.PeriodEnd.Time.Format("2006-01-02")
	}
	renewal := p.pricing.ComputePrice(plan.MonthlyPriceCents, int(sub.DurationMonths))
	if err := p.notifier.SendRenewalReminder(ctx, services.NotificationParams{
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PlanName:    plan.Name,
		AmountCents: renewal.FinalCents,
		Currency:    plan.Currency,
		EndDate:     endDate,
	}); err != nil {
		// The dedup row already exists; log instead of retrying into a
		// duplicate email next sweep.
		p.logger.Error("failed to send renewal reminder", zap.Error(err),
			zap.String("subscription_id", sub.ID.String()))
	}
	return true, nil
}

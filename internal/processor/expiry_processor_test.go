package processor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/mocks"
	"github.com/lucybridge/subscription-api/internal/processor"
)

func init() {
	logger.InitLogger("test")
}

func elapsedSubscription(durationMonths int32, autoRenew bool) db.Subscription {
	return db.Subscription{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		PlanID:         uuid.New(),
		Status:         db.SubscriptionStatusActive,
		DurationMonths: durationMonths,
		AutoRenew:      autoRenew,
		PeriodEnd:      pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
	}
}

func TestExpiryProcessor_ExpiresLapsedSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockCohorts := mocks.NewMockICohortService(ctrl)
	mockNotifier := mocks.NewMockINotificationService(ctrl)
	p := processor.NewExpiryProcessor(mockQuerier, mockCohorts, mockNotifier)
	ctx := context.Background()

	sub := elapsedSubscription(1, false)

	mockQuerier.EXPECT().ListExpiredActiveSubscriptions(ctx, gomock.Any()).Return([]db.Subscription{sub}, nil)
	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, sub.ID).Return(db.DowngradeRequest{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
			assert.Equal(t, db.SubscriptionStatusExpired, arg.Status)
			expired := sub
			expired.Status = arg.Status
			return expired, nil
		})
	mockCohorts.EXPECT().ReconcileAccess(ctx, sub.UserID, int32(0)).Return(nil)
	mockQuerier.EXPECT().GetUser(ctx, sub.UserID).Return(db.User{ID: sub.UserID, Email: "learner@example.com"}, nil)
	mockQuerier.EXPECT().GetPlan(ctx, sub.PlanID).Return(db.Plan{ID: sub.PlanID, Name: "Standard", Currency: "ETB"}, nil)
	mockNotifier.EXPECT().SendSubscriptionExpired(ctx, gomock.Any()).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	results, err := p.ProcessExpiredSubscriptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Total)
	assert.Equal(t, 1, results.Expired)
	assert.Equal(t, 0, results.Downgraded)
	assert.Equal(t, 0, results.Errored)
}

func TestExpiryProcessor_LeavesAutoRenewSubscriptionActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockCohorts := mocks.NewMockICohortService(ctrl)
	mockNotifier := mocks.NewMockINotificationService(ctrl)
	p := processor.NewExpiryProcessor(mockQuerier, mockCohorts, mockNotifier)
	ctx := context.Background()

	sub := elapsedSubscription(1, true)

	// No status update, no access change, no notification: the renewal
	// payment webhook owns this subscription's fate.
	mockQuerier.EXPECT().ListExpiredActiveSubscriptions(ctx, gomock.Any()).Return([]db.Subscription{sub}, nil)
	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, sub.ID).Return(db.DowngradeRequest{}, pgx.ErrNoRows)

	results, err := p.ProcessExpiredSubscriptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Total)
	assert.Equal(t, 1, results.AwaitingRenewal)
	assert.Equal(t, 0, results.Expired)
	assert.Equal(t, 0, results.Errored)
}

func TestExpiryProcessor_AppliesPendingDowngradeInsteadOfExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockCohorts := mocks.NewMockICohortService(ctrl)
	mockNotifier := mocks.NewMockINotificationService(ctrl)
	p := processor.NewExpiryProcessor(mockQuerier, mockCohorts, mockNotifier)
	ctx := context.Background()

	sub := elapsedSubscription(3, true)
	targetPlanID := uuid.New()
	downgrade := db.DowngradeRequest{
		ID:             uuid.New(),
		SubscriptionID: sub.ID,
		FromPlanID:     sub.PlanID,
		ToPlanID:       targetPlanID,
		Status:         db.DowngradeStatusPending,
		EffectiveAt:    sub.PeriodEnd,
	}
	moved := sub
	moved.PlanID = targetPlanID

	mockQuerier.EXPECT().ListExpiredActiveSubscriptions(ctx, gomock.Any()).Return([]db.Subscription{sub}, nil)
	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, sub.ID).Return(downgrade, nil)
	mockQuerier.EXPECT().GetPlan(ctx, targetPlanID).Return(
		db.Plan{ID: targetPlanID, ShortCode: "basic", TierRank: 1, Active: true}, nil)
	// Only the plan flips; the period is extended by the next renewal
	// payment, not here.
	mockQuerier.EXPECT().UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{ID: sub.ID, PlanID: targetPlanID}).Return(moved, nil)
	mockQuerier.EXPECT().MarkDowngradeApplied(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.MarkDowngradeAppliedParams) (db.DowngradeRequest, error) {
			assert.Equal(t, downgrade.ID, arg.ID)
			assert.True(t, arg.AppliedAt.Valid)
			return downgrade, nil
		})
	mockCohorts.EXPECT().ReconcileAccess(ctx, sub.UserID, int32(1)).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	results, err := p.ProcessExpiredSubscriptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Downgraded)
	assert.Equal(t, 0, results.Expired)
	assert.Equal(t, 0, results.Errored)
}

func TestExpiryProcessor_IgnoresDowngradeScheduledForLaterPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockCohorts := mocks.NewMockICohortService(ctrl)
	mockNotifier := mocks.NewMockINotificationService(ctrl)
	p := processor.NewExpiryProcessor(mockQuerier, mockCohorts, mockNotifier)
	ctx := context.Background()

	// A renewal pushed the downgrade's effective time past the period
	// being processed; the request must stay pending.
	sub := elapsedSubscription(1, false)
	downgrade := db.DowngradeRequest{
		ID:             uuid.New(),
		SubscriptionID: sub.ID,
		ToPlanID:       uuid.New(),
		Status:         db.DowngradeStatusPending,
		EffectiveAt:    pgtype.Timestamptz{Time: sub.PeriodEnd.Time.AddDate(0, 1, 0), Valid: true},
	}

	mockQuerier.EXPECT().ListExpiredActiveSubscriptions(ctx, gomock.Any()).Return([]db.Subscription{sub}, nil)
	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, sub.ID).Return(downgrade, nil)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
			assert.Equal(t, db.SubscriptionStatusExpired, arg.Status)
			return sub, nil
		})
	mockCohorts.EXPECT().ReconcileAccess(ctx, sub.UserID, int32(0)).Return(nil)
	mockQuerier.EXPECT().GetUser(ctx, sub.UserID).Return(db.User{ID: sub.UserID}, nil)
	mockQuerier.EXPECT().GetPlan(ctx, sub.PlanID).Return(db.Plan{ID: sub.PlanID}, nil)
	mockNotifier.EXPECT().SendSubscriptionExpired(ctx, gomock.Any()).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	results, err := p.ProcessExpiredSubscriptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Expired)
	assert.Equal(t, 0, results.Downgraded)
}

func TestExpiryProcessor_CountsErrorsAndKeepsSweeping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockCohorts := mocks.NewMockICohortService(ctrl)
	mockNotifier := mocks.NewMockINotificationService(ctrl)
	p := processor.NewExpiryProcessor(mockQuerier, mockCohorts, mockNotifier)
	ctx := context.Background()

	broken := elapsedSubscription(1, false)
	healthy := elapsedSubscription(1, false)

	mockQuerier.EXPECT().ListExpiredActiveSubscriptions(ctx, gomock.Any()).Return([]db.Subscription{broken, healthy}, nil)

	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, broken.ID).Return(db.DowngradeRequest{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).Return(db.Subscription{}, errors.New("deadlock detected"))

	mockQuerier.EXPECT().GetPendingDowngradeBySubscription(ctx, healthy.ID).Return(db.DowngradeRequest{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).Return(healthy, nil)
	mockCohorts.EXPECT().ReconcileAccess(ctx, healthy.UserID, int32(0)).Return(nil)
	mockQuerier.EXPECT().GetUser(ctx, healthy.UserID).Return(db.User{ID: healthy.UserID}, nil)
	mockQuerier.EXPECT().GetPlan(ctx, healthy.PlanID).Return(db.Plan{ID: healthy.PlanID}, nil)
	mockNotifier.EXPECT().SendSubscriptionExpired(ctx, gomock.Any()).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	results, err := p.ProcessExpiredSubscriptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, results.Total)
	assert.Equal(t, 1, results.Expired)
	assert.Equal(t, 1, results.Errored)
}

package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/mocks"
	"github.com/lucybridge/subscription-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

type subscriptionFixture struct {
	querier  *mocks.MockQuerier
	pricing  *mocks.MockIPricingCalculator
	cohorts  *mocks.MockICohortService
	notifier *mocks.MockINotificationService
	gateway  *mocks.MockIGatewayClient
	service  *services.SubscriptionService
}

func newSubscriptionFixture(ctrl *gomock.Controller) *subscriptionFixture {
	f := &subscriptionFixture{
		querier:  mocks.NewMockQuerier(ctrl),
		pricing:  mocks.NewMockIPricingCalculator(ctrl),
		cohorts:  mocks.NewMockICohortService(ctrl),
		notifier: mocks.NewMockINotificationService(ctrl),
		gateway:  mocks.NewMockIGatewayClient(ctrl),
	}
	f.service = services.NewSubscriptionService(
		f.querier, f.pricing, f.cohorts, f.notifier, f.gateway,
		"https://app.example.com", true,
	)
	return f
}

func futureTime(d time.Duration) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now().Add(d), Valid: true}
}

func TestSubscriptionService_StartCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	planID := uuid.New()
	user := db.User{ID: userID, Email: "learner@example.com", FirstName: "Abel", LastName: "Tesfaye"}
	plan := db.Plan{ID: planID, Name: "Standard", ShortCode: "standard", TierRank: 2, MonthlyPriceCents: 24900, Currency: "ETB", Active: true}
	breakdown := services.PriceBreakdown{Months: 3, MonthlyCents: 24900, TotalCents: 74700, DiscountPercent: 5, DiscountCents: 3735, FinalCents: 70965}

	tests := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "opens a checkout session for an active plan",
			setupMocks: func() {
				f.querier.EXPECT().GetUser(ctx, userID).Return(user, nil)
				f.querier.EXPECT().GetPlan(ctx, planID).Return(plan, nil)
				f.pricing.EXPECT().ComputePrice(int64(24900), 3).Return(breakdown)
				f.querier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
						assert.Equal(t, db.SubscriptionStatusPending, arg.Status)
						assert.Equal(t, int32(3), arg.DurationMonths)
						assert.True(t, arg.AutoRenew)
						return db.Subscription{ID: uuid.New(), UserID: userID, PlanID: planID, Status: arg.Status, DurationMonths: arg.DurationMonths}, nil
					})
				f.querier.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
						assert.Equal(t, int64(70965), arg.AmountCents)
						assert.Equal(t, int32(3), arg.Months)
						assert.Equal(t, int32(5), arg.DiscountPercent)
						assert.Equal(t, db.PaymentTypeNew, arg.PaymentType)
						return db.Payment{ID: uuid.New(), SubscriptionID: arg.SubscriptionID, TxRef: arg.TxRef, AmountCents: arg.AmountCents}, nil
					})
				f.gateway.EXPECT().InitializePayment(ctx, gomock.Any()).Return("https://checkout.chapa.co/pay/abc", nil)
				f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)
			},
		},
		{
			name: "rejects an unknown user",
			setupMocks: func() {
				f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "rejects an inactive plan",
			setupMocks: func() {
				f.querier.EXPECT().GetUser(ctx, userID).Return(user, nil)
				f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, Active: false}, nil)
			},
			wantErr: services.ErrInvalidPlan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			session, err := f.service.StartCheckout(ctx, userID, planID, 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
				assert.Equal(t, "https://checkout.chapa.co/pay/abc", session.CheckoutURL)
				assert.Equal(t, int64(70965), session.Breakdown.FinalCents)
			}
		})
	}
}

func TestSubscriptionService_StartCheckout_GatewayFailureMarksPaymentFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	planID := uuid.New()
	paymentID := uuid.New()

	f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID, Email: "learner@example.com"}, nil)
	f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, MonthlyPriceCents: 24900, Currency: "ETB", Active: true}, nil)
	f.pricing.EXPECT().ComputePrice(int64(24900), 1).Return(services.PriceBreakdown{Months: 1, MonthlyCents: 24900, TotalCents: 24900, FinalCents: 24900})
	f.querier.EXPECT().CreateSubscription(ctx, gomock.Any()).Return(db.Subscription{ID: uuid.New(), UserID: userID, PlanID: planID}, nil)
	f.querier.EXPECT().CreatePayment(ctx, gomock.Any()).Return(db.Payment{ID: paymentID}, nil)
	f.gateway.EXPECT().InitializePayment(ctx, gomock.Any()).Return("", errors.New("gateway unavailable"))
	f.querier.EXPECT().UpdatePaymentStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, paymentID, arg.ID)
			assert.Equal(t, db.PaymentStatusFailed, arg.Status)
			return db.Payment{ID: paymentID, Status: arg.Status}, nil
		})

	session, err := f.service.StartCheckout(ctx, userID, planID, 1)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestSubscriptionService_StartUpgrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	subID := uuid.New()
	currentPlanID := uuid.New()
	targetPlanID := uuid.New()
	sub := db.Subscription{
		ID: subID, UserID: userID, PlanID: currentPlanID,
		Status: db.SubscriptionStatusActive, DurationMonths: 3,
		PeriodEnd: futureTime(60 * 24 * time.Hour),
	}

	t.Run("rejects a target that is not a higher tier", func(t *testing.T) {
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().GetPlan(ctx, currentPlanID).Return(db.Plan{ID: currentPlanID, TierRank: 2, Active: true}, nil)
		f.querier.EXPECT().GetPlan(ctx, targetPlanID).Return(db.Plan{ID: targetPlanID, TierRank: 1, Active: true}, nil)

		_, err := f.service.StartUpgrade(ctx, userID, subID, targetPlanID)
		assert.ErrorIs(t, err, services.ErrNoHigherTier)
	})

	t.Run("rejects a caller who does not own the subscription", func(t *testing.T) {
		stranger := uuid.New()
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)

		_, err := f.service.StartUpgrade(ctx, stranger, subID, targetPlanID)
		assert.ErrorIs(t, err, services.ErrOwnershipMismatch)
	})

	t.Run("rejects an inactive subscription", func(t *testing.T) {
		expired := sub
		expired.Status = db.SubscriptionStatusExpired
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(expired, nil)

		_, err := f.service.StartUpgrade(ctx, userID, subID, targetPlanID)
		assert.ErrorIs(t, err, services.ErrNotActive)
	})

	t.Run("charges the rate difference for the remaining months", func(t *testing.T) {
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().GetPlan(ctx, currentPlanID).Return(db.Plan{ID: currentPlanID, TierRank: 1, MonthlyPriceCents: 14900, Active: true}, nil)
		f.querier.EXPECT().GetPlan(ctx, targetPlanID).Return(db.Plan{ID: targetPlanID, TierRank: 2, MonthlyPriceCents: 24900, Currency: "ETB", Active: true}, nil)
		f.pricing.EXPECT().ComputeUpgradePrice(int64(14900), int64(24900), gomock.Any()).Return(
			services.PriceBreakdown{Months: 2, MonthlyCents: 10000, TotalCents: 20000, FinalCents: 20000})
		f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID, Email: "learner@example.com"}, nil)
		f.querier.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
				assert.Equal(t, db.PaymentTypeUpgrade, arg.PaymentType)
				assert.True(t, arg.TargetPlanID.Valid)
				assert.Equal(t, targetPlanID, uuid.UUID(arg.TargetPlanID.Bytes))
				return db.Payment{ID: uuid.New(), SubscriptionID: subID, TxRef: arg.TxRef}, nil
			})
		f.gateway.EXPECT().InitializePayment(ctx, gomock.Any()).Return("https://checkout.chapa.co/pay/up", nil)
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		session, err := f.service.StartUpgrade(ctx, userID, subID, targetPlanID)
		assert.NoError(t, err)
		assert.Equal(t, int64(20000), session.Breakdown.FinalCents)
	})
}

func TestSubscriptionService_ConfirmPayment_AppliesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	subID := uuid.New()
	txRef := chapa.NewTxRef(subID, 1).String()
	result := &chapa.VerifyResult{TxRef: txRef, Reference: "ch-123", Status: "success", AmountCents: 24900}

	t.Run("a completed payment is a no-op", func(t *testing.T) {
		f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(
			db.Payment{ID: uuid.New(), SubscriptionID: subID, Status: db.PaymentStatusCompleted}, nil)

		assert.NoError(t, f.service.ConfirmPayment(ctx, result))
	})

	t.Run("a malformed tx ref is rejected", func(t *testing.T) {
		err := f.service.ConfirmPayment(ctx, &chapa.VerifyResult{TxRef: "stripe_evt_123", Status: "success"})
		assert.ErrorIs(t, err, chapa.ErrMalformedTxRef)
	})

	t.Run("a settled payment activates the subscription", func(t *testing.T) {
		userID := uuid.New()
		planID := uuid.New()
		payment := db.Payment{ID: uuid.New(), SubscriptionID: subID, TxRef: txRef, AmountCents: 24900, Status: db.PaymentStatusPending, PaymentType: db.PaymentTypeNew}
		sub := db.Subscription{ID: subID, UserID: userID, PlanID: planID, Status: db.SubscriptionStatusPending, DurationMonths: 1}

		f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(payment, nil)
		f.querier.EXPECT().UpdatePaymentStatus(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
				assert.Equal(t, db.PaymentStatusCompleted, arg.Status)
				assert.Equal(t, "ch-123", arg.GatewayReference.String)
				completed := payment
				completed.Status = arg.Status
				return completed, nil
			})
		f.querier.EXPECT().GetSubscriptionForUpdate(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().UpdateSubscriptionPeriod(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionPeriodParams) (db.Subscription, error) {
				assert.Equal(t, db.SubscriptionStatusActive, arg.Status)
				assert.WithinDuration(t, time.Now(), arg.PeriodStart.Time, time.Minute)
				assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), arg.PeriodEnd.Time, time.Minute)
				active := sub
				active.Status = arg.Status
				active.PeriodStart = arg.PeriodStart
				active.PeriodEnd = arg.PeriodEnd
				return active, nil
			})
		f.querier.EXPECT().GetPlan(ctx, planID).Return(
			db.Plan{ID: planID, Name: "Standard", TierRank: 2, Currency: "ETB"}, nil).Times(2)
		f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(2)).Return(nil)
		f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID, Email: "learner@example.com"}, nil)
		f.notifier.EXPECT().SendReceipt(ctx, gomock.Any()).Return(nil)
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		assert.NoError(t, f.service.ConfirmPayment(ctx, result))
	})
}

func TestSubscriptionService_ConfirmPayment_WebhookAndPollRaceAppliesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	subID := uuid.New()
	userID := uuid.New()
	planID := uuid.New()
	txRef := chapa.NewTxRef(subID, 1).String()
	pending := db.Payment{ID: uuid.New(), SubscriptionID: subID, TxRef: txRef, AmountCents: 24900, Status: db.PaymentStatusPending, PaymentType: db.PaymentTypeNew}
	completed := pending
	completed.Status = db.PaymentStatusCompleted
	sub := db.Subscription{ID: subID, UserID: userID, PlanID: planID, Status: db.SubscriptionStatusPending, DurationMonths: 1}

	// The row lock serializes the two callers: the winner sees the
	// pending payment, the loser sees it already completed.
	f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(pending, nil)
	f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(completed, nil)

	f.querier.EXPECT().UpdatePaymentStatus(ctx, gomock.Any()).Return(completed, nil).Times(1)
	f.querier.EXPECT().GetSubscriptionForUpdate(ctx, subID).Return(sub, nil).Times(1)
	f.querier.EXPECT().UpdateSubscriptionPeriod(ctx, gomock.Any()).Return(sub, nil).Times(1)
	f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, TierRank: 2}, nil).Times(2)
	f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(2)).Return(nil).Times(1)
	f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID}, nil).Times(1)
	f.notifier.EXPECT().SendReceipt(ctx, gomock.Any()).Return(nil).Times(1)
	f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil).Times(1)

	before := testutil.ToFloat64(metrics.PaymentsConfirmed.WithLabelValues("new", "completed"))

	result := &chapa.VerifyResult{TxRef: txRef, Status: "success", AmountCents: 24900}
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.service.ConfirmPayment(ctx, result)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	after := testutil.ToFloat64(metrics.PaymentsConfirmed.WithLabelValues("new", "completed"))
	assert.Equal(t, before+1, after)
}

func TestSubscriptionService_ConfirmPayment_RenewalExtendsFromPeriodEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	subID := uuid.New()
	userID := uuid.New()
	planID := uuid.New()
	txRef := chapa.NewTxRef(subID, 1).String()
	periodEnd := time.Now().Add(5 * 24 * time.Hour)
	sub := db.Subscription{
		ID: subID, UserID: userID, PlanID: planID,
		Status: db.SubscriptionStatusActive, DurationMonths: 1,
		PeriodEnd: pgtype.Timestamptz{Time: periodEnd, Valid: true},
	}

	f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(
		db.Payment{ID: uuid.New(), SubscriptionID: subID, TxRef: txRef, Status: db.PaymentStatusPending, PaymentType: db.PaymentTypeRenewal}, nil)
	f.querier.EXPECT().UpdatePaymentStatus(ctx, gomock.Any()).Return(
		db.Payment{SubscriptionID: subID, Status: db.PaymentStatusCompleted, PaymentType: db.PaymentTypeRenewal}, nil)
	f.querier.EXPECT().GetSubscriptionForUpdate(ctx, subID).Return(sub, nil)
	f.querier.EXPECT().UpdateSubscriptionPeriod(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionPeriodParams) (db.Subscription, error) {
			// The new period stacks on the old one, not on today.
			assert.WithinDuration(t, periodEnd, arg.PeriodStart.Time, time.Second)
			assert.WithinDuration(t, periodEnd.AddDate(0, 1, 0), arg.PeriodEnd.Time, time.Second)
			return sub, nil
		})
	f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, TierRank: 1}, nil).Times(2)
	f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(1)).Return(nil)
	f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID}, nil)
	f.notifier.EXPECT().SendReceipt(ctx, gomock.Any()).Return(nil)
	f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	err := f.service.ConfirmPayment(ctx, &chapa.VerifyResult{TxRef: txRef, Status: "success"})
	assert.NoError(t, err)
}

func TestSubscriptionService_ConfirmPayment_FailedInitialPaymentCancelsPendingSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	subID := uuid.New()
	userID := uuid.New()
	planID := uuid.New()
	txRef := chapa.NewTxRef(subID, 1).String()
	payment := db.Payment{ID: uuid.New(), SubscriptionID: subID, TxRef: txRef, Status: db.PaymentStatusPending, PaymentType: db.PaymentTypeNew}
	sub := db.Subscription{ID: subID, UserID: userID, PlanID: planID, Status: db.SubscriptionStatusPending}

	f.querier.EXPECT().GetPaymentByTxRefForUpdate(ctx, txRef).Return(payment, nil)
	f.querier.EXPECT().UpdatePaymentStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, db.PaymentStatusFailed, arg.Status)
			return payment, nil
		})
	f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
	f.querier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
			assert.Equal(t, db.SubscriptionStatusCanceled, arg.Status)
			assert.True(t, arg.CanceledAt.Valid)
			return sub, nil
		})
	f.querier.EXPECT().GetUser(ctx, userID).Return(db.User{ID: userID, Email: "learner@example.com"}, nil)
	f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, Name: "Basic"}, nil)
	f.notifier.EXPECT().SendRenewalFailed(ctx, gomock.Any()).Return(nil)
	f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	err := f.service.ConfirmPayment(ctx, &chapa.VerifyResult{TxRef: txRef, Status: "failed"})
	assert.NoError(t, err)
}

func TestSubscriptionService_ScheduleDowngrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	subID := uuid.New()
	currentPlanID := uuid.New()
	targetPlanID := uuid.New()
	periodEnd := futureTime(30 * 24 * time.Hour)
	sub := db.Subscription{
		ID: subID, UserID: userID, PlanID: currentPlanID,
		Status: db.SubscriptionStatusActive, DurationMonths: 1, PeriodEnd: periodEnd,
	}

	tests := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "schedules the downgrade for the period end",
			setupMocks: func() {
				f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
				f.querier.EXPECT().GetPlan(ctx, currentPlanID).Return(db.Plan{ID: currentPlanID, TierRank: 3, Active: true}, nil)
				f.querier.EXPECT().GetPlan(ctx, targetPlanID).Return(db.Plan{ID: targetPlanID, ShortCode: "basic", TierRank: 1, Active: true}, nil)
				f.querier.EXPECT().GetPendingDowngradeBySubscription(ctx, subID).Return(db.DowngradeRequest{}, pgx.ErrNoRows)
				f.querier.EXPECT().CreateDowngradeRequest(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateDowngradeRequestParams) (db.DowngradeRequest, error) {
						assert.Equal(t, targetPlanID, arg.ToPlanID)
						assert.WithinDuration(t, periodEnd.Time, arg.EffectiveAt.Time, time.Second)
						return db.DowngradeRequest{ID: uuid.New(), SubscriptionID: subID, ToPlanID: arg.ToPlanID, Status: db.DowngradeStatusPending}, nil
					})
				f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)
			},
		},
		{
			name: "rejects a target that is not lower",
			setupMocks: func() {
				f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
				f.querier.EXPECT().GetPlan(ctx, currentPlanID).Return(db.Plan{ID: currentPlanID, TierRank: 1, Active: true}, nil)
				f.querier.EXPECT().GetPlan(ctx, targetPlanID).Return(db.Plan{ID: targetPlanID, TierRank: 2, Active: true}, nil)
			},
			wantErr: services.ErrNoLowerTier,
		},
		{
			name: "rejects a second pending downgrade",
			setupMocks: func() {
				f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
				f.querier.EXPECT().GetPlan(ctx, currentPlanID).Return(db.Plan{ID: currentPlanID, TierRank: 3, Active: true}, nil)
				f.querier.EXPECT().GetPlan(ctx, targetPlanID).Return(db.Plan{ID: targetPlanID, TierRank: 1, Active: true}, nil)
				f.querier.EXPECT().GetPendingDowngradeBySubscription(ctx, subID).Return(db.DowngradeRequest{ID: uuid.New()}, nil)
			},
			wantErr: services.ErrAlreadyScheduled,
		},
		{
			name: "rejects an inactive subscription",
			setupMocks: func() {
				lapsed := sub
				lapsed.Status = db.SubscriptionStatusExpired
				f.querier.EXPECT().GetSubscription(ctx, subID).Return(lapsed, nil)
			},
			wantErr: services.ErrNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			request, err := f.service.ScheduleDowngrade(ctx, userID, subID, targetPlanID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, db.DowngradeStatusPending, request.Status)
			}
		})
	}
}

func TestSubscriptionService_CancelDowngrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	subID := uuid.New()
	sub := db.Subscription{ID: subID, UserID: userID, Status: db.SubscriptionStatusActive}

	t.Run("clears the pending downgrade", func(t *testing.T) {
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().CancelPendingDowngrades(ctx, subID).Return(int64(1), nil)
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		assert.NoError(t, f.service.CancelDowngrade(ctx, userID, subID))
	})

	t.Run("reports not found when nothing was scheduled", func(t *testing.T) {
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().CancelPendingDowngrades(ctx, subID).Return(int64(0), nil)

		assert.ErrorIs(t, f.service.CancelDowngrade(ctx, userID, subID), services.ErrNotFound)
	})
}

func TestSubscriptionService_CancelAtPeriodEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	userID := uuid.New()
	subID := uuid.New()
	sub := db.Subscription{ID: subID, UserID: userID, Status: db.SubscriptionStatusActive, AutoRenew: true, PeriodEnd: futureTime(10 * 24 * time.Hour)}

	t.Run("turns off auto renew and keeps the subscription active", func(t *testing.T) {
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{ID: subID, AutoRenew: false}).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionAutoRenewParams) (db.Subscription, error) {
				updated := sub
				updated.AutoRenew = false
				return updated, nil
			})
		f.querier.EXPECT().CreateCancellation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateCancellationParams) (db.Cancellation, error) {
				assert.False(t, arg.Immediate)
				return db.Cancellation{}, nil
			})
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		updated, err := f.service.CancelAtPeriodEnd(ctx, userID, subID, "too expensive")
		assert.NoError(t, err)
		assert.False(t, updated.AutoRenew)
		assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
	})

	t.Run("rejects an inactive subscription", func(t *testing.T) {
		lapsed := sub
		lapsed.Status = db.SubscriptionStatusExpired
		f.querier.EXPECT().GetSubscription(ctx, subID).Return(lapsed, nil)

		_, err := f.service.CancelAtPeriodEnd(ctx, userID, subID, "")
		assert.ErrorIs(t, err, services.ErrNotActive)
	})
}

func TestSubscriptionService_CancelImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	adminID := uuid.New()
	userID := uuid.New()
	subID := uuid.New()
	sub := db.Subscription{ID: subID, UserID: userID, Status: db.SubscriptionStatusActive}

	f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
	f.querier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
			assert.Equal(t, db.SubscriptionStatusCanceled, arg.Status)
			assert.True(t, arg.CanceledAt.Valid)
			canceled := sub
			canceled.Status = arg.Status
			return canceled, nil
		})
	f.querier.EXPECT().CancelPendingDowngrades(ctx, subID).Return(int64(0), nil)
	f.querier.EXPECT().CreateCancellation(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateCancellationParams) (db.Cancellation, error) {
			assert.True(t, arg.Immediate)
			return db.Cancellation{}, nil
		})
	f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(0)).Return(nil)
	f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	updated, err := f.service.CancelImmediate(ctx, adminID, subID, "chargeback")
	assert.NoError(t, err)
	assert.Equal(t, db.SubscriptionStatusCanceled, updated.Status)
}

func TestSubscriptionService_AdminChangePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	userID := uuid.New()
	subID := uuid.New()
	fromPlanID := uuid.New()
	toPlanID := uuid.New()
	sub := db.Subscription{ID: subID, UserID: userID, PlanID: fromPlanID, Status: db.SubscriptionStatusActive}
	target := db.Plan{ID: toPlanID, ShortCode: "premium", TierRank: 3, Active: true}

	t.Run("changes the plan, clears downgrades and writes an audit row", func(t *testing.T) {
		f := newSubscriptionFixture(ctrl)
		ctx := context.Background()

		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().GetPlan(ctx, toPlanID).Return(target, nil)
		f.querier.EXPECT().UpdateSubscriptionPlan(ctx, db.UpdateSubscriptionPlanParams{ID: subID, PlanID: toPlanID}).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionPlanParams) (db.Subscription, error) {
				updated := sub
				updated.PlanID = arg.PlanID
				return updated, nil
			})
		f.querier.EXPECT().UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{ID: subID, AutoRenew: true}).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionAutoRenewParams) (db.Subscription, error) {
				updated := sub
				updated.PlanID = toPlanID
				updated.AutoRenew = arg.AutoRenew
				return updated, nil
			})
		f.querier.EXPECT().CancelPendingDowngrades(ctx, subID).Return(int64(1), nil)
		f.querier.EXPECT().CreatePlanChangeAudit(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreatePlanChangeAuditParams) (db.PlanChangeAudit, error) {
				assert.Equal(t, fromPlanID, arg.FromPlanID)
				assert.Equal(t, toPlanID, arg.ToPlanID)
				assert.Equal(t, adminID, arg.ChangedBy)
				return db.PlanChangeAudit{}, nil
			})
		f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(3)).Return(nil)
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		updated, err := f.service.AdminChangePlan(ctx, adminID, subID, toPlanID, "support escalation")
		assert.NoError(t, err)
		assert.Equal(t, toPlanID, updated.PlanID)
		assert.True(t, updated.AutoRenew)
	})

	t.Run("skips the audit row when auditing is off", func(t *testing.T) {
		f := newSubscriptionFixture(ctrl)
		f.service = services.NewSubscriptionService(
			f.querier, f.pricing, f.cohorts, f.notifier, f.gateway,
			"https://app.example.com", false,
		)
		ctx := context.Background()

		f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
		f.querier.EXPECT().GetPlan(ctx, toPlanID).Return(target, nil)
		f.querier.EXPECT().UpdateSubscriptionPlan(ctx, gomock.Any()).Return(sub, nil)
		f.querier.EXPECT().UpdateSubscriptionAutoRenew(ctx, gomock.Any()).Return(sub, nil)
		f.querier.EXPECT().CancelPendingDowngrades(ctx, subID).Return(int64(0), nil)
		f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(3)).Return(nil)
		f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

		_, err := f.service.AdminChangePlan(ctx, adminID, subID, toPlanID, "")
		assert.NoError(t, err)
	})
}

func TestSubscriptionService_AdminActivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSubscriptionFixture(ctrl)
	ctx := context.Background()

	adminID := uuid.New()
	userID := uuid.New()
	subID := uuid.New()
	planID := uuid.New()
	sub := db.Subscription{ID: subID, UserID: userID, PlanID: planID, Status: db.SubscriptionStatusPending, DurationMonths: 3, AutoRenew: false}

	f.querier.EXPECT().GetSubscription(ctx, subID).Return(sub, nil)
	f.querier.EXPECT().UpdateSubscriptionPeriod(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionPeriodParams) (db.Subscription, error) {
			// months <= 0 falls back to the stored duration.
			assert.Equal(t, int32(3), arg.DurationMonths)
			assert.WithinDuration(t, time.Now().AddDate(0, 3, 0), arg.PeriodEnd.Time, time.Minute)
			active := sub
			active.Status = db.SubscriptionStatusActive
			return active, nil
		})
	f.querier.EXPECT().UpdateSubscriptionAutoRenew(ctx, db.UpdateSubscriptionAutoRenewParams{ID: subID, AutoRenew: true}).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionAutoRenewParams) (db.Subscription, error) {
			active := sub
			active.Status = db.SubscriptionStatusActive
			active.AutoRenew = arg.AutoRenew
			return active, nil
		})
	f.querier.EXPECT().GetPlan(ctx, planID).Return(db.Plan{ID: planID, TierRank: 2}, nil)
	f.cohorts.EXPECT().ReconcileAccess(ctx, userID, int32(2)).Return(nil)
	f.querier.EXPECT().CreateSubscriptionLog(ctx, gomock.Any()).Return(db.SubscriptionLog{}, nil)

	updated, err := f.service.AdminActivate(ctx, adminID, subID, 0)
	assert.NoError(t, err)
	assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
	assert.True(t, updated.AutoRenew)
}

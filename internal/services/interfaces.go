package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
)

// IPricingCalculator produces price breakdowns for plan purchases.
type IPricingCalculator interface {
	ComputePrice(monthlyRateCents int64, months int) PriceBreakdown
	ComputeUpgradePrice(currentMonthlyCents, targetMonthlyCents int64, remainingMonths int) PriceBreakdown
}

// ICohortService reconciles a user's access-group membership with their
// entitlement tier.
type ICohortService interface {
	ReconcileAccess(ctx context.Context, userID uuid.UUID, tierRank int32) error
	ListUserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// INotificationService sends transactional emails. Implementations must
// never block a state transition on delivery failure.
type INotificationService interface {
	SendReceipt(ctx context.Context, params NotificationParams) error
	SendRenewalReminder(ctx context.Context, params NotificationParams) error
	SendRenewalFailed(ctx context.Context, params NotificationParams) error
	SendSubscriptionExpired(ctx context.Context, params NotificationParams) error
}

// IGatewayClient is the slice of the payment gateway the services use.
type IGatewayClient interface {
	InitializePayment(ctx context.Context, req chapa.InitializeRequest) (string, error)
	VerifyTransaction(ctx context.Context, txRef string) (*chapa.VerifyResult, error)
}

// NotificationParams carries the template substitution values for a
// transactional email.
type NotificationParams struct {
	Email       string
	FirstName   string
	LastName    string
	PlanName    string
	AmountCents int64
	Currency    string
	EndDate     string
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/middleware"
	"github.com/lucybridge/subscription-api/internal/services"
)

// SubscriptionHandler manages subscription-related HTTP endpoints.
type SubscriptionHandler struct {
	common        *CommonServices
	subscriptions *services.SubscriptionService
	pricing       services.IPricingCalculator
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(common *CommonServices, subscriptions *services.SubscriptionService, pricing services.IPricingCalculator) *SubscriptionHandler {
	return &SubscriptionHandler{
		common:        common,
		subscriptions: subscriptions,
		pricing:       pricing,
	}
}

// CreateSubscriptionRequest is the checkout request body.
type CreateSubscriptionRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
	Months int       `json:"months"`
}

// ChangePlanRequest carries a target plan for upgrades and downgrades.
type ChangePlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}

// CancelRequest carries the optional cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// SubscriptionResponse wraps a subscription together with its plan.
type SubscriptionResponse struct {
	Subscription db.Subscription `json:"subscription"`
	Plan         db.Plan         `json:"plan"`
}

// ListPlans returns the purchasable plans.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptions.ListPlans(c.Request.Context())
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// QuotePlanPrice returns the price breakdown for a plan over the
// requested number of months.
func (h *SubscriptionHandler) QuotePlanPrice(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("plan_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid plan ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	months, _ := strconv.Atoi(c.DefaultQuery("months", "1"))

	plan, err := h.common.db.GetPlan(c.Request.Context(), planID)
	if err != nil {
		h.common.HandleServiceError(c, services.ErrInvalidPlan, "Invalid plan")
		return
	}
	c.JSON(http.StatusOK, h.pricing.ComputePrice(plan.MonthlyPriceCents, months))
}

// CreateSubscription starts a checkout and returns the hosted payment
// URL.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	if req.Months == 0 {
		req.Months = 1
	}

	session, err := h.subscriptions.StartCheckout(c.Request.Context(), middleware.GetUserID(c), req.PlanID, req.Months)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to start checkout")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetCurrentSubscription returns the caller's active subscription.
func (h *SubscriptionHandler) GetCurrentSubscription(c *gin.Context) {
	sub, plan, err := h.subscriptions.GetCurrentSubscription(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to get subscription")
		return
	}
	c.JSON(http.StatusOK, SubscriptionResponse{Subscription: sub, Plan: plan})
}

// UpgradeSubscription opens a checkout for the rate difference to a
// higher tier.
func (h *SubscriptionHandler) UpgradeSubscription(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	session, err := h.subscriptions.StartUpgrade(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.PlanID)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to start upgrade")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ScheduleDowngrade books a move to a lower tier at the period end.
func (h *SubscriptionHandler) ScheduleDowngrade(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	request, err := h.subscriptions.ScheduleDowngrade(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.PlanID)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to schedule downgrade")
		return
	}
	c.JSON(http.StatusCreated, request)
}

// CancelDowngrade removes the scheduled downgrade for a subscription.
func (h *SubscriptionHandler) CancelDowngrade(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	if err := h.subscriptions.CancelDowngrade(c.Request.Context(), middleware.GetUserID(c), subscriptionID); err != nil {
		h.common.HandleServiceError(c, err, "Failed to cancel downgrade")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "downgrade cancelled"})
}

// CancelSubscription turns off auto-renewal; access runs to the period
// end.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	sub, err := h.subscriptions.CancelAtPeriodEnd(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.Reason)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to cancel subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// ListPayments returns the caller's payment history.
func (h *SubscriptionHandler) ListPayments(c *gin.Context) {
	payments, err := h.subscriptions.ListPayments(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

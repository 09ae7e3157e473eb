package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lucybridge/subscription-api/internal/middleware"
	"github.com/lucybridge/subscription-api/internal/services"
)

// AdminHandler exposes the back-office subscription operations.
type AdminHandler struct {
	common        *CommonServices
	subscriptions *services.SubscriptionService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(common *CommonServices, subscriptions *services.SubscriptionService) *AdminHandler {
	return &AdminHandler{
		common:        common,
		subscriptions: subscriptions,
	}
}

// ActivateRequest carries the optional activation length.
type ActivateRequest struct {
	Months int `json:"months"`
}

// AdminChangePlanRequest switches a subscription onto a new plan.
type AdminChangePlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
	Reason string    `json:"reason"`
}

// ActivateSubscription activates a subscription without a payment,
// starting a fresh period today.
func (h *AdminHandler) ActivateSubscription(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	sub, err := h.subscriptions.AdminActivate(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.Months)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to activate subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// ChangePlan switches a subscription's plan immediately, superseding
// any scheduled downgrade.
func (h *AdminHandler) ChangePlan(c *gin.Context) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid subscription ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	var req AdminChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	sub, err := h.subscriptions.AdminChangePlan(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.PlanID, req.Reason)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to change plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// CancelSubscription ends a subscription immediately and reverts the
// user to free preview access.
func (h *AdminHandler) CancelSubscription(c *gin.Context) {
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

	sub, err := h.subscriptions.CancelImmediate(c.Request.Context(), middleware.GetUserID(c), subscriptionID, req.Reason)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to cancel subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// Stats returns subscription counts and settled revenue.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.subscriptions.Stats(c.Request.Context())
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to get stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

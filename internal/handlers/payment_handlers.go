package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/metrics"
	"github.com/lucybridge/subscription-api/internal/middleware"
	"github.com/lucybridge/subscription-api/internal/services"
)

// PaymentHandler exposes the gateway webhook and the return-URL verify
// endpoint.
type PaymentHandler struct {
	common   *CommonServices
	payments *services.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(common *CommonServices, payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		common:   common,
		payments: payments,
	}
}

// HandleChapaWebhook receives gateway deliveries. Only a signature
// mismatch gets a 400; every other outcome returns 200 so the gateway
// does not retry payloads we can never use.
func (h *PaymentHandler) HandleChapaWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.common.HandleError(c, err, "Failed to read webhook body", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	signature := c.GetHeader(chapa.SignatureHeader)

	if err := h.payments.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			metrics.WebhookEvents.WithLabelValues("invalid_signature").Inc()
			h.common.HandleError(c, err, "Invalid signature", http.StatusBadRequest, h.common.GetLogger())
			return
		}
		// HandleWebhook swallows everything else; this is unreachable
		// today but kept so a new error path cannot 500 the gateway.
		h.common.GetLogger().Error("unexpected webhook error", zap.Error(err))
	}

	metrics.WebhookEvents.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, SuccessResponse{Message: "ok"})
}

// VerifyPayment is the return-URL polling path: verifies a pending
// payment against the gateway and returns its current state.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid payment ID format", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	payment, err := h.payments.VerifyPending(c.Request.Context(), paymentID, middleware.GetUserID(c), !middleware.IsPlainLearner(c))
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to verify payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

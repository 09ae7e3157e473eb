package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/client/chapa"
	"github.com/lucybridge/subscription-api/internal/config"
	"github.com/lucybridge/subscription-api/internal/constants"
	"github.com/lucybridge/subscription-api/internal/logger"
)

// NotificationService sends transactional subscription emails through
// Resend. Template bodies come from config and use {placeholder}
// substitution, mirroring the admin-editable templates in the host LMS.
type NotificationService struct {
	client   *resend.Client
	cfg      config.EmailConfig
	siteName string
	logger   *zap.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(cfg config.EmailConfig, siteName string) *NotificationService {
	return &NotificationService{
		client:   resend.NewClient(cfg.ResendAPIKey),
		cfg:      cfg,
		siteName: siteName,
		logger:   logger.Log,
	}
}

// SendReceipt confirms a completed payment.
func (ns *NotificationService) SendReceipt(ctx context.Context, params NotificationParams) error {
	return ns.send(ctx, params, constants.TemplateReceipt, "Payment received", ns.cfg.ReceiptTemplate)
}

// SendRenewalReminder warns that the current period ends soon.
func (ns *NotificationService) SendRenewalReminder(ctx context.Context, params NotificationParams) error {
	return ns.send(ctx, params, constants.TemplateRenewalReminder, "Your subscription ends soon", ns.cfg.RenewalReminderTemplate)
}

// SendRenewalFailed reports a failed renewal payment.
func (ns *NotificationService) SendRenewalFailed(ctx context.Context, params NotificationParams) error {
	return ns.send(ctx, params, constants.TemplateRenewalFailed, "Payment unsuccessful", ns.cfg.RenewalFailedTemplate)
}

// SendSubscriptionExpired reports that access has lapsed.
func (ns *NotificationService) SendSubscriptionExpired(ctx context.Context, params NotificationParams) error {
	return ns.send(ctx, params, constants.TemplateSubscriptionExpired, "Your subscription has expired", ns.cfg.ExpiredTemplate)
}

func (ns *NotificationService) send(ctx context.Context, params NotificationParams, templateName, subject, body string) error {
	from := fmt.Sprintf("%s <%s>", ns.cfg.FromName, ns.cfg.FromEmail)
	req := &resend.SendEmailRequest{
		From:    from,
		To:      []string{params.Email},
		Subject: subject,
		Text:    ns.render(body, params),
		Tags: []resend.Tag{
			{Name: "category", Value: "subscription"},
			{Name: "template", Value: templateName},
		},
	}

	sent, err := ns.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		ns.logger.Error("failed to send notification",
			zap.Error(err),
			zap.String("to", params.Email),
			zap.String("template", templateName))
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}

	ns.logger.Info("notification sent",
		zap.String("email_id", sent.Id),
		zap.String("to", params.Email),
		zap.String("template", templateName))
	return nil
}

// render substitutes the template placeholders with the given values.
func (ns *NotificationService) render(body string, params NotificationParams) string {
	replacer := strings.NewReplacer(
		"{firstname}", params.FirstName,
		"{lastname}", params.LastName,
		"{plan}", params.PlanName,
		"{amount}", chapa.FormatAmount(params.AmountCents),
		"{currency}", params.Currency,
		"{enddate}", params.EndDate,
		"{site}", ns.siteName,
	)
	return replacer.Replace(body)
}

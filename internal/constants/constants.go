package constants

// Deployment stages.
const (
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
)

// ErrorLevel is the log level name used for error logging configuration.
const ErrorLevel = "error"

// Currency is the only currency the platform bills in.
const Currency = "ETB"

// Plan short codes in tier order.
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// Subscription log actions.
const (
	ActionSubscribe       = "subscribe"
	ActionUpgrade         = "upgrade"
	ActionDowngrade       = "downgrade"
	ActionCancel          = "cancel"
	ActionCancelDowngrade = "cancel_downgrade_request"
	ActionAdminActivate   = "admin_activate"
	ActionAdminChangePlan = "admin_change_plan"
	ActionExpire          = "expire"
)

// ReminderTypeRenewal is the dedup key type for renewal reminders.
const ReminderTypeRenewal = "renewal_reminder"

// Notification template names.
const (
	TemplateReceipt             = "receipt"
	TemplateRenewalReminder     = "renewal_reminder"
	TemplateRenewalFailed       = "renewal_failed"
	TemplateSubscriptionExpired = "subscription_expired"
)

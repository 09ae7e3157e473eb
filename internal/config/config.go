package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config carries every setting the service needs, resolved once at startup.
// Components receive it (or a slice of it) through their constructors and
// never read the process environment themselves.
type Config struct {
	Stage    string `env:"STAGE" envDefault:"local"`
	HTTPPort int    `env:"PORT" envDefault:"8080"`
	BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SiteName string `env:"SITE_NAME" envDefault:"LucyBridge Academy"`

	DatabaseURL string `env:"DATABASE_URL,required"`

	JWTSecret string `env:"JWT_SECRET,required"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Chapa    ChapaConfig
	Email    EmailConfig
	Cohorts  CohortConfig
	Billing  BillingConfig
	Sweeps   SweepConfig
	Features FeatureConfig
}

// ChapaConfig holds payment gateway credentials and mode.
type ChapaConfig struct {
	PublicKey     string `env:"CHAPA_PUBLIC_KEY"`
	SecretKey     string `env:"CHAPA_SECRET_KEY,required"`
	BaseURL       string `env:"CHAPA_BASE_URL" envDefault:"https://api.chapa.co/v1"`
	WebhookSecret string `env:"CHAPA_WEBHOOK_SECRET"`
}

// EmailConfig holds the transactional email sender settings. Template
// bodies are admin-configurable; {firstname}, {lastname}, {plan},
// {amount}, {currency}, {enddate} and {site} are substituted at send
// time.
type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromEmail    string `env:"NOTIFY_FROM_EMAIL" envDefault:"noreply@lucybridge.academy"`
	FromName     string `env:"NOTIFY_FROM_NAME" envDefault:"LucyBridge Academy"`

	ReceiptTemplate         string `env:"TEMPLATE_RECEIPT" envDefault:"Dear {firstname} {lastname}, we received your payment of {amount} {currency} for the {plan} plan. Your access runs until {enddate}. Thank you for learning with {site}."`
	RenewalReminderTemplate string `env:"TEMPLATE_RENEWAL_REMINDER" envDefault:"Dear {firstname}, your {plan} subscription ends on {enddate}. Renew now to keep your access to {site}."`
	RenewalFailedTemplate   string `env:"TEMPLATE_RENEWAL_FAILED" envDefault:"Dear {firstname}, your renewal payment for the {plan} plan could not be completed. Please try again from your {site} account."`
	ExpiredTemplate         string `env:"TEMPLATE_SUBSCRIPTION_EXPIRED" envDefault:"Dear {firstname}, your {plan} subscription expired on {enddate}. Resubscribe any time to regain access to {site}."`
}

// CohortConfig maps plan tiers to access-group identifiers in the host LMS.
// Any entry may be left unset, in which case that tier's reconciliation step
// is a no-op.
type CohortConfig struct {
	FreePreviewGroupID uuid.UUID `env:"FREE_PREVIEW_COHORT_ID"`
	BasicGroupID       uuid.UUID `env:"BASIC_COHORT_ID"`
	StandardGroupID    uuid.UUID `env:"STANDARD_COHORT_ID"`
	PremiumGroupID     uuid.UUID `env:"PREMIUM_COHORT_ID"`
}

// BillingConfig holds the duration discount table, in whole percent.
type BillingConfig struct {
	DiscountThreeMonths  int `env:"DISCOUNT_3_MONTHS" envDefault:"5"`
	DiscountSixMonths    int `env:"DISCOUNT_6_MONTHS" envDefault:"10"`
	DiscountTwelveMonths int `env:"DISCOUNT_12_MONTHS" envDefault:"15"`
}

// SweepConfig controls the scheduled reconciliation jobs.
type SweepConfig struct {
	Interval          time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	ReminderLeadTime  time.Duration `env:"REMINDER_LEAD_TIME" envDefault:"168h"`
	ReminderTolerance time.Duration `env:"REMINDER_TOLERANCE" envDefault:"12h"`
}

// FeatureConfig holds capability flags resolved once at startup.
type FeatureConfig struct {
	// PlanChangeAudit enables writing plan_change_audits rows on admin
	// plan changes. Off when the deployment has not migrated that table.
	PlanChangeAudit bool `env:"ENABLE_PLAN_CHANGE_AUDIT" envDefault:"true"`
}

// Load parses configuration from the environment. A .env file is honoured
// for local development when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DiscountTable returns the duration discount table keyed by month count.
// One month is always undiscounted.
func (c *Config) DiscountTable() map[int]int {
	return map[int]int{
		1:  0,
		3:  c.Billing.DiscountThreeMonths,
		6:  c.Billing.DiscountSixMonths,
		12: c.Billing.DiscountTwelveMonths,
	}
}

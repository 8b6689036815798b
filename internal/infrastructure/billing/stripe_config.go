package billing

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v81"
)

// StripeConfig holds configuration for Stripe integration
type StripeConfig struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx)
	SecretKey string `json:"secret_key" mapstructure:"secret_key"`

	// WebhookSecret is the secret for verifying webhook signatures
	WebhookSecret string `json:"webhook_secret" mapstructure:"webhook_secret"`

	// PremiumPriceID is the Stripe Price ID for the premium subscription
	PremiumPriceID string `json:"premium_price_id" mapstructure:"premium_price_id"`

	// AppBaseURL is the frontend base URL used for checkout return paths
	// when the request carries no Origin header
	AppBaseURL string `json:"app_base_url" mapstructure:"app_base_url"`

	// IsTestMode indicates if using Stripe test mode
	IsTestMode bool `json:"is_test_mode" mapstructure:"is_test_mode"`
}

// Validate checks the Stripe configuration. All missing required fields are
// collected into a single error so a misconfigured deployment reports the
// full list at startup instead of failing one field at a time.
func (c *StripeConfig) Validate() error {
	var missing []string
	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if c.WebhookSecret == "" {
		missing = append(missing, "webhook_secret")
	}
	if c.PremiumPriceID == "" {
		missing = append(missing, "premium_price_id")
	}
	if c.AppBaseURL == "" {
		missing = append(missing, "app_base_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("stripe: missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.IsTestMode {
		if !strings.HasPrefix(c.SecretKey, "sk_test") {
			return fmt.Errorf("stripe: test mode enabled but secret key is not a test key")
		}
	} else {
		if !strings.HasPrefix(c.SecretKey, "sk_live") {
			return fmt.Errorf("stripe: live mode enabled but secret key is not a live key")
		}
	}

	return nil
}

// InitStripeClient initializes the Stripe client with the configured API key
func (c *StripeConfig) InitStripeClient() {
	stripe.Key = c.SecretKey
}

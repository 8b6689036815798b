package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/customer"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"

	"github.com/taskboard/backend/internal/domain/billing"
	"github.com/taskboard/backend/internal/domain/shared"
)

// StripeAdapter implements Stripe billing operations for subscription
// checkout, the billing portal, and webhook verification
type StripeAdapter struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter(config *StripeConfig, logger *zap.Logger) (*StripeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.InitStripeClient()

	return &StripeAdapter{
		config: config,
		logger: logger,
	}, nil
}

// CreateCustomer creates a new customer in Stripe and returns its ID
func (a *StripeAdapter) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	a.logger.Debug("Creating Stripe customer", zap.String("email", email))

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.Context = ctx

	cust, err := customer.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe customer",
			zap.String("email", email),
			zap.Error(err))
		return "", shared.NewDomainError(shared.CodeUpstreamError, fmt.Sprintf("stripe: failed to create customer: %v", err))
	}

	a.logger.Info("Created Stripe customer",
		zap.String("customer_id", cust.ID),
		zap.String("email", email))

	return cust.ID, nil
}

// CreateCheckoutSession creates a subscription checkout session for the
// premium price and returns its redirect URL
func (a *StripeAdapter) CreateCheckoutSession(ctx context.Context, customerID, successURL, cancelURL string) (string, error) {
	a.logger.Debug("Creating Stripe checkout session",
		zap.String("customer_id", customerID))

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(a.config.PremiumPriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe checkout session",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return "", shared.NewDomainError(shared.CodeUpstreamError, fmt.Sprintf("stripe: failed to create checkout session: %v", err))
	}

	a.logger.Info("Created Stripe checkout session",
		zap.String("customer_id", customerID),
		zap.String("session_id", sess.ID))

	return sess.URL, nil
}

// CreatePortalSession creates a billing portal session so an existing
// subscriber can manage their subscription
func (a *StripeAdapter) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	a.logger.Debug("Creating Stripe billing portal session",
		zap.String("customer_id", customerID))

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		a.logger.Error("Failed to create Stripe billing portal session",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return "", shared.NewDomainError(shared.CodeUpstreamError, fmt.Sprintf("stripe: failed to create portal session: %v", err))
	}

	return sess.URL, nil
}

// VerifyWebhook verifies the signature of a raw webhook payload and decodes
// it into a provider-neutral event. Verification always happens before any
// part of the payload is interpreted.
func (a *StripeAdapter) VerifyWebhook(payload []byte, signature string) (billing.Event, error) {
	if a.config.WebhookSecret == "" {
		return billing.Event{}, shared.NewDomainError(shared.CodeConfigurationError, "stripe: webhook secret is not configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, a.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		a.logger.Error("Failed to verify webhook signature", zap.Error(err))
		return billing.Event{}, shared.NewDomainError(shared.CodeVerificationFailed, fmt.Sprintf("webhook signature verification failed: %v", err))
	}

	return DecodeEvent(event), nil
}

package billing

import (
	"context"

	"github.com/taskboard/backend/internal/domain/billing"
)

// PaymentProvider abstracts the payment processor. The Stripe adapter in
// infrastructure/billing is the production implementation.
type PaymentProvider interface {
	// CreateCustomer creates a customer record at the provider and returns its ID
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	// CreateCheckoutSession creates a subscription checkout session and
	// returns its redirect URL
	CreateCheckoutSession(ctx context.Context, customerID, successURL, cancelURL string) (string, error)

	// CreatePortalSession creates a billing portal session and returns its
	// redirect URL
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)

	// VerifyWebhook verifies a raw webhook payload against its signature and
	// decodes it into a domain event
	VerifyWebhook(payload []byte, signature string) (billing.Event, error)
}

package billing

import (
	"encoding/json"
	"time"

	"github.com/stripe/stripe-go/v81"

	"github.com/taskboard/backend/internal/domain/billing"
)

// DecodeEvent maps a verified Stripe event onto the domain event shape.
// Unknown event types decode to EventKindUnrecognized; malformed payloads for
// known types decode with an empty customer ID. Neither is an error, so that
// new or unexpected provider payloads never break webhook processing.
func DecodeEvent(event stripe.Event) billing.Event {
	decoded := billing.Event{
		ID:         event.ID,
		Kind:       billing.KindForType(string(event.Type)),
		RawType:    string(event.Type),
		ReceivedAt: time.Now(),
	}

	switch decoded.Kind {
	case billing.EventKindCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err == nil && session.Customer != nil {
			decoded.CustomerID = session.Customer.ID
		}

	case billing.EventKindSubscriptionCreated,
		billing.EventKindSubscriptionUpdated,
		billing.EventKindSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err == nil {
			if sub.Customer != nil {
				decoded.CustomerID = sub.Customer.ID
			}
			decoded.SubscriptionStatus = string(sub.Status)
		}
	}

	return decoded
}

package billing

import (
	"time"

	"github.com/taskboard/backend/internal/domain/account"
)

// EventKind is the closed set of provider event categories the reconciler
// understands. Anything else maps to EventKindUnrecognized.
type EventKind string

const (
	EventKindCheckoutCompleted   EventKind = "checkout_completed"
	EventKindSubscriptionCreated EventKind = "subscription_created"
	EventKindSubscriptionUpdated EventKind = "subscription_updated"
	EventKindSubscriptionDeleted EventKind = "subscription_deleted"
	EventKindUnrecognized        EventKind = "unrecognized"
)

// Subscription statuses that entitle an account to the premium plan
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
)

// Event is a provider-neutral view of a webhook event after verification
// and decoding
type Event struct {
	ID                 string
	Kind               EventKind
	RawType            string
	CustomerID         string
	SubscriptionStatus string
	ReceivedAt         time.Time
}

// KindForType maps a provider event type to an EventKind. Unknown types are
// never an error; they decode to EventKindUnrecognized so new provider event
// types cannot break processing.
func KindForType(eventType string) EventKind {
	switch eventType {
	case "checkout.session.completed":
		return EventKindCheckoutCompleted
	case "customer.subscription.created":
		return EventKindSubscriptionCreated
	case "customer.subscription.updated":
		return EventKindSubscriptionUpdated
	case "customer.subscription.deleted":
		return EventKindSubscriptionDeleted
	default:
		return EventKindUnrecognized
	}
}

// PlanForEvent returns the plan an event transitions the linked account to.
// The second return value is false when the event carries no plan transition.
//
// A completed checkout always means premium. Subscription lifecycle events
// grant premium only while the subscription is active or trialing; every
// other status, and deletion, falls back to free. The mapping is a pure
// function of the event, so redelivered events are idempotent.
func PlanForEvent(e Event) (account.Plan, bool) {
	switch e.Kind {
	case EventKindCheckoutCompleted:
		return account.PlanPremium, true
	case EventKindSubscriptionCreated, EventKindSubscriptionUpdated:
		if e.SubscriptionStatus == SubscriptionStatusActive || e.SubscriptionStatus == SubscriptionStatusTrialing {
			return account.PlanPremium, true
		}
		return account.PlanFree, true
	case EventKindSubscriptionDeleted:
		return account.PlanFree, true
	default:
		return "", false
	}
}

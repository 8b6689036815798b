package billing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/taskboard/backend/internal/domain/account"
	"github.com/taskboard/backend/internal/domain/billing"
	"github.com/taskboard/backend/internal/domain/shared"
)

// WebhookService reconciles account plan state from payment provider
// webhook events
type WebhookService struct {
	provider    PaymentProvider
	accountRepo account.Repository
	logger      *zap.Logger
}

// WebhookServiceConfig contains configuration for WebhookService
type WebhookServiceConfig struct {
	Provider    PaymentProvider
	AccountRepo account.Repository
	Logger      *zap.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(cfg WebhookServiceConfig) *WebhookService {
	return &WebhookService{
		provider:    cfg.Provider,
		accountRepo: cfg.AccountRepo,
		logger:      cfg.Logger,
	}
}

// WebhookResult contains the result of processing a webhook
type WebhookResult struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Processed bool   `json:"processed"`
	Message   string `json:"message,omitempty"`
}

// ProcessWebhook verifies, decodes, and applies a provider webhook event.
//
// The signature is verified before anything in the payload is interpreted.
// Events for customers we don't know are acknowledged with a warning so the
// provider stops redelivering them; a persistence failure is returned as an
// error so the provider retries.
func (s *WebhookService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := s.provider.VerifyWebhook(payload, signature)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Processing billing webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.RawType))

	result := &WebhookResult{
		EventID:   event.ID,
		EventType: event.RawType,
	}

	plan, ok := billing.PlanForEvent(event)
	if !ok {
		s.logger.Debug("Unhandled webhook event type",
			zap.String("event_type", event.RawType))
		result.Message = "Event type not handled"
		return result, nil
	}

	if event.CustomerID == "" {
		s.logger.Warn("Webhook event has no customer ID, skipping",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.RawType))
		result.Message = "Event has no customer ID"
		return result, nil
	}

	err = s.accountRepo.ApplyPlanByStripeCustomerID(ctx, event.CustomerID, plan, account.TaskLimitForPlan(plan))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Webhooks may arrive before account setup completes, or for
			// customers not in our system. Acknowledge receipt so the
			// provider does not retry.
			s.logger.Warn("Account not found for Stripe customer",
				zap.String("customer_id", event.CustomerID),
				zap.String("event_type", event.RawType))
			result.Message = "No account for customer"
			return result, nil
		}
		s.logger.Error("Failed to apply plan from webhook event",
			zap.String("event_id", event.ID),
			zap.String("customer_id", event.CustomerID),
			zap.Error(err))
		return nil, shared.NewDomainError(shared.CodePersistenceError, fmt.Sprintf("failed to apply plan: %v", err))
	}

	s.logger.Info("Webhook event applied",
		zap.String("event_id", event.ID),
		zap.String("customer_id", event.CustomerID),
		zap.String("plan", string(plan)))

	result.Processed = true
	return result, nil
}

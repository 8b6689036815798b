package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskboard/backend/internal/domain/account"
	"github.com/taskboard/backend/internal/domain/shared"
)

// Return paths relative to the frontend base URL
const (
	portalReturnPath    = "/profile"
	checkoutSuccessPath = "/profile?success=true"
	checkoutCancelPath  = "/profile?canceled=true"
)

// SessionService issues checkout and billing portal sessions for accounts
type SessionService struct {
	provider    PaymentProvider
	accountRepo account.Repository
	appBaseURL  string
	logger      *zap.Logger
}

// SessionServiceConfig contains configuration for SessionService
type SessionServiceConfig struct {
	Provider    PaymentProvider
	AccountRepo account.Repository
	AppBaseURL  string
	Logger      *zap.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	return &SessionService{
		provider:    cfg.Provider,
		accountRepo: cfg.AccountRepo,
		appBaseURL:  cfg.AppBaseURL,
		logger:      cfg.Logger,
	}
}

// SessionResult contains the redirect URL of an issued session
type SessionResult struct {
	URL string `json:"url"`
}

// SubscriptionInfo is a read model of an account's current subscription state
type SubscriptionInfo struct {
	Plan       account.Plan `json:"plan"`
	TasksLimit int          `json:"tasks_limit"`
	HasBilling bool         `json:"has_billing"`
}

// CreateBillingSession issues a checkout session for free accounts or a
// billing portal session for premium accounts.
//
// An account without a provider customer gets one created, and the linkage is
// persisted before any session is issued. If persisting the linkage fails the
// whole flow fails; issuing a checkout for a customer we cannot find again
// would strand the subscription.
func (s *SessionService) CreateBillingSession(ctx context.Context, accountID uuid.UUID, origin string) (*SessionResult, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	customerID := acc.StripeCustomerID
	if customerID == "" {
		customerID, err = s.provider.CreateCustomer(ctx, acc.Email, acc.Name)
		if err != nil {
			return nil, err
		}

		if err := s.accountRepo.SetStripeCustomerID(ctx, acc.ID, customerID); err != nil {
			s.logger.Error("Failed to persist Stripe customer linkage",
				zap.String("account_id", acc.ID.String()),
				zap.String("customer_id", customerID),
				zap.Error(err))
			return nil, shared.NewDomainError(shared.CodePersistenceError, fmt.Sprintf("failed to link billing customer: %v", err))
		}

		s.logger.Info("Linked account to Stripe customer",
			zap.String("account_id", acc.ID.String()),
			zap.String("customer_id", customerID))
	}

	base := s.baseURL(origin)

	var url string
	if acc.IsPremium() {
		url, err = s.provider.CreatePortalSession(ctx, customerID, base+portalReturnPath)
	} else {
		url, err = s.provider.CreateCheckoutSession(ctx, customerID, base+checkoutSuccessPath, base+checkoutCancelPath)
	}
	if err != nil {
		return nil, err
	}

	return &SessionResult{URL: url}, nil
}

// GetSubscription returns the account's current plan and quota
func (s *SessionService) GetSubscription(ctx context.Context, accountID uuid.UUID) (*SubscriptionInfo, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionInfo{
		Plan:       acc.Plan,
		TasksLimit: acc.TasksLimit,
		HasBilling: acc.HasStripeCustomer(),
	}, nil
}

// baseURL prefers the request origin over the configured frontend URL so
// checkout returns to the site the user actually came from
func (s *SessionService) baseURL(origin string) string {
	if origin != "" {
		return strings.TrimSuffix(origin, "/")
	}
	return strings.TrimSuffix(s.appBaseURL, "/")
}

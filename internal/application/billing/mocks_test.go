package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskboard/backend/internal/domain/account"
	"github.com/taskboard/backend/internal/domain/billing"
)

// MockPaymentProvider is a mock implementation of PaymentProvider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) CreateCheckoutSession(ctx context.Context, customerID, successURL, cancelURL string) (string, error) {
	args := m.Called(ctx, customerID, successURL, cancelURL)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	args := m.Called(ctx, customerID, returnURL)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) VerifyWebhook(payload []byte, signature string) (billing.Event, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(billing.Event), args.Error(1)
}

// MockAccountRepository is a mock implementation of account.Repository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*account.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) SetStripeCustomerID(ctx context.Context, accountID uuid.UUID, customerID string) error {
	args := m.Called(ctx, accountID, customerID)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyPlanByStripeCustomerID(ctx context.Context, customerID string, plan account.Plan, tasksLimit int) error {
	args := m.Called(ctx, customerID, plan, tasksLimit)
	return args.Error(0)
}

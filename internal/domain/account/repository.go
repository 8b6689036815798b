package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for accounts
type Repository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByStripeCustomerID finds an account by its Stripe customer ID
	FindByStripeCustomerID(ctx context.Context, customerID string) (*Account, error)

	// Create persists a new account
	Create(ctx context.Context, acc *Account) error

	// Save creates or updates an account
	Save(ctx context.Context, acc *Account) error

	// SetStripeCustomerID records the Stripe customer linkage for an account
	SetStripeCustomerID(ctx context.Context, accountID uuid.UUID, customerID string) error

	// ApplyPlanByStripeCustomerID updates plan and task quota for the account
	// linked to the given Stripe customer in a single statement. Returns
	// shared.ErrNotFound when no account carries that linkage.
	ApplyPlanByStripeCustomerID(ctx context.Context, customerID string, plan Plan, tasksLimit int) error
}

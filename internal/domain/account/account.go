package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskboard/backend/internal/domain/shared"
)

// Plan represents a subscription plan tier
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Task quota per plan
const (
	freeTaskLimit    = 100
	premiumTaskLimit = 10000
)

// IsValid checks if the plan is a known tier
func (p Plan) IsValid() bool {
	return p == PlanFree || p == PlanPremium
}

// TaskLimitForPlan returns the task quota for a plan. Unknown plans get the
// free quota.
func TaskLimitForPlan(plan Plan) int {
	if plan == PlanPremium {
		return premiumTaskLimit
	}
	return freeTaskLimit
}

// Account is the aggregate root for a billing account. TasksLimit is always
// derived from Plan; ApplyPlan is the only way to change either.
type Account struct {
	ID               uuid.UUID
	Email            string
	Name             string
	StripeCustomerID string
	Plan             Plan
	TasksLimit       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewAccount creates a new account on the free plan
func NewAccount(email, name string) (*Account, error) {
	if email == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Email is required")
	}

	now := time.Now()
	return &Account{
		ID:         uuid.New(),
		Email:      email,
		Name:       name,
		Plan:       PlanFree,
		TasksLimit: TaskLimitForPlan(PlanFree),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyPlan moves the account to the given plan and syncs the task quota
func (a *Account) ApplyPlan(plan Plan) error {
	if !plan.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unknown plan: "+string(plan))
	}
	a.Plan = plan
	a.TasksLimit = TaskLimitForPlan(plan)
	a.UpdatedAt = time.Now()
	return nil
}

// AttachStripeCustomer records the Stripe customer linkage. The linkage is
// write-once; re-attaching a different customer is rejected.
func (a *Account) AttachStripeCustomer(customerID string) error {
	if customerID == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Stripe customer ID is required")
	}
	if a.StripeCustomerID != "" && a.StripeCustomerID != customerID {
		return shared.NewDomainError(shared.CodeInvalidInput, "Account is already linked to a different Stripe customer")
	}
	a.StripeCustomerID = customerID
	a.UpdatedAt = time.Now()
	return nil
}

// HasStripeCustomer reports whether the account is linked to a Stripe customer
func (a *Account) HasStripeCustomer() bool {
	return a.StripeCustomerID != ""
}

// IsPremium reports whether the account is on the premium plan
func (a *Account) IsPremium() bool {
	return a.Plan == PlanPremium
}

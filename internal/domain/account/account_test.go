package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLimitForPlan(t *testing.T) {
	assert.Equal(t, 100, TaskLimitForPlan(PlanFree))
	assert.Equal(t, 10000, TaskLimitForPlan(PlanPremium))
	assert.Equal(t, 100, TaskLimitForPlan(Plan("enterprise")))
}

func TestNewAccount(t *testing.T) {
	t.Run("creates free account with quota", func(t *testing.T) {
		acc, err := NewAccount("user@example.com", "Test User")
		require.NoError(t, err)

		assert.Equal(t, PlanFree, acc.Plan)
		assert.Equal(t, 100, acc.TasksLimit)
		assert.Empty(t, acc.StripeCustomerID)
		assert.NotEqual(t, acc.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("requires email", func(t *testing.T) {
		_, err := NewAccount("", "Test User")
		assert.Error(t, err)
	})
}

func TestAccount_ApplyPlan(t *testing.T) {
	acc, err := NewAccount("user@example.com", "Test User")
	require.NoError(t, err)

	t.Run("premium sets quota in lockstep", func(t *testing.T) {
		require.NoError(t, acc.ApplyPlan(PlanPremium))
		assert.Equal(t, PlanPremium, acc.Plan)
		assert.Equal(t, 10000, acc.TasksLimit)
	})

	t.Run("downgrade restores free quota", func(t *testing.T) {
		require.NoError(t, acc.ApplyPlan(PlanFree))
		assert.Equal(t, PlanFree, acc.Plan)
		assert.Equal(t, 100, acc.TasksLimit)
	})

	t.Run("rejects unknown plan", func(t *testing.T) {
		err := acc.ApplyPlan(Plan("platinum"))
		assert.Error(t, err)
		assert.Equal(t, PlanFree, acc.Plan)
	})
}

func TestAccount_AttachStripeCustomer(t *testing.T) {
	acc, err := NewAccount("user@example.com", "Test User")
	require.NoError(t, err)

	t.Run("attaches customer once", func(t *testing.T) {
		require.NoError(t, acc.AttachStripeCustomer("cus_123"))
		assert.True(t, acc.HasStripeCustomer())
	})

	t.Run("same customer is a no-op", func(t *testing.T) {
		assert.NoError(t, acc.AttachStripeCustomer("cus_123"))
	})

	t.Run("rejects a different customer", func(t *testing.T) {
		err := acc.AttachStripeCustomer("cus_456")
		assert.Error(t, err)
		assert.Equal(t, "cus_123", acc.StripeCustomerID)
	})

	t.Run("rejects empty customer id", func(t *testing.T) {
		assert.Error(t, acc.AttachStripeCustomer(""))
	})
}

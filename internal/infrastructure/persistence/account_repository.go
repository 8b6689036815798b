package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskboard/backend/internal/domain/account"
	"github.com/taskboard/backend/internal/domain/shared"
	"github.com/taskboard/backend/internal/infrastructure/persistence/models"
)

// GormAccountRepository implements account.Repository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStripeCustomerID finds an account by its Stripe customer ID
func (r *GormAccountRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*account.Account, error) {
	if customerID == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("stripe_customer_id = ?", customerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a new account
func (r *GormAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	model := models.AccountModelFromDomain(acc)
	return r.db.WithContext(ctx).Create(model).Error
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	model := models.AccountModelFromDomain(acc)
	return r.db.WithContext(ctx).Save(model).Error
}

// SetStripeCustomerID records the Stripe customer linkage for an account
func (r *GormAccountRepository) SetStripeCustomerID(ctx context.Context, accountID uuid.UUID, customerID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"stripe_customer_id": sql.NullString{String: customerID, Valid: customerID != ""},
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ApplyPlanByStripeCustomerID updates plan and quota for the account linked
// to the given Stripe customer in a single UPDATE. Zero matched rows means
// no account carries that linkage.
func (r *GormAccountRepository) ApplyPlanByStripeCustomerID(ctx context.Context, customerID string, plan account.Plan, tasksLimit int) error {
	if customerID == "" {
		return shared.ErrNotFound
	}
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("stripe_customer_id = ?", customerID).
		Updates(map[string]interface{}{
			"plan":        string(plan),
			"tasks_limit": tasksLimit,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

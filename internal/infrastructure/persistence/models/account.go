package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard/backend/internal/domain/account"
)

// AccountModel is the GORM persistence model for accounts
type AccountModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email            string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name             string         `gorm:"type:varchar(255)"`
	StripeCustomerID sql.NullString `gorm:"type:varchar(255);uniqueIndex"`
	Plan             string         `gorm:"type:varchar(32);not null;default:'free'"`
	TasksLimit       int            `gorm:"not null;default:100"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName specifies the table name for AccountModel
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain entity
func (m *AccountModel) ToDomain() *account.Account {
	acc := &account.Account{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Plan:       account.Plan(m.Plan),
		TasksLimit: m.TasksLimit,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.StripeCustomerID.Valid {
		acc.StripeCustomerID = m.StripeCustomerID.String
	}
	return acc
}

// AccountModelFromDomain converts a domain entity to the persistence model
func AccountModelFromDomain(acc *account.Account) *AccountModel {
	m := &AccountModel{
		ID:         acc.ID,
		Email:      acc.Email,
		Name:       acc.Name,
		Plan:       string(acc.Plan),
		TasksLimit: acc.TasksLimit,
		CreatedAt:  acc.CreatedAt,
		UpdatedAt:  acc.UpdatedAt,
	}
	if acc.StripeCustomerID != "" {
		m.StripeCustomerID = sql.NullString{String: acc.StripeCustomerID, Valid: true}
	}
	return m
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodDaily   = "daily"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
)

var (
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
)

// Budget represents a spending limit for a category over a period. A category
// may carry several budgets; duplicates are legal and each row is independent.
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category  string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period    string          `gorm:"type:varchar(20);not null" json:"period"`
	CreatedAt time.Time       `gorm:"not null;index" json:"createdAt"`
}

// AllBudgetPeriods returns the valid budget period values
func AllBudgetPeriods() []string {
	return []string{BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly}
}

// IsValidBudgetPeriod checks if a period string is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	}
	return false
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	return b.Validate()
}

// Validate checks budget fields against the domain rules
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}

	if !b.Amount.IsPositive() {
		return ErrInvalidBudgetAmount
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	return nil
}

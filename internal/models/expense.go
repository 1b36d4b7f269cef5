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
	// MaxDescriptionLength is the upper bound for expense descriptions
	MaxDescriptionLength = 200
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrEmptyCategory      = errors.New("category is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrMissingDate        = errors.New("date is required")
)

// Expense represents a single recorded expense. Expenses reference their
// category by name, not by category ID; renaming a category does not relink
// expenses recorded under the old name.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"createdAt"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate checks expense fields against the domain rules
func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}

	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}

	if len(e.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if e.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// Day returns the expense date truncated to midnight in its location.
// Expenses carry day precision; the time-of-day component is not meaningful.
func (e *Expense) Day() time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
}

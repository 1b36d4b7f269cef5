package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCategoryName    = errors.New("category name is required")
	ErrInvalidCategoryColor = errors.New("category color must be a hex RGB value")

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Category is a labeling convenience for expenses and budgets. The link is the
// name string itself: deleting or renaming a category leaves historical
// expenses and budgets pointing at the old name.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"`
	Color     string    `gorm:"type:varchar(7)" json:"color"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

// Validate checks category fields against the domain rules
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}

	if c.Color != "" && !hexColorPattern.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}

	return nil
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the list filter sentinel that disables category filtering.
const CategoryAll = "all"

// Product represents a catalog item.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(200);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Category    string          `json:"category" gorm:"type:varchar(50);index;not null"`
	Image       string          `json:"image" gorm:"type:text"`
	Sizes       []string        `json:"sizes" gorm:"serializer:json"`
	Colors      []string        `json:"colors" gorm:"serializer:json"`
	InStock     bool            `json:"inStock"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// ProductFields holds the admin-editable fields of a product. Update uses
// full-replace semantics over all of them.
type ProductFields struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category" validate:"required,max=50"`
	Image       string           `json:"image"`
	Sizes       []string         `json:"sizes"`
	Colors      []string         `json:"colors"`
	InStock     *bool            `json:"inStock"`
}

// Validate checks the invariants the catalog store enforces.
func (f ProductFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(f.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if f.Price == nil {
		return fmt.Errorf("%w: price is required", ErrValidation)
	}
	if f.Price.IsNegative() {
		return fmt.Errorf("%w: price must be a non-negative number, got %s", ErrValidation, f.Price)
	}
	// Prices are stored with two decimal places.
	if !f.Price.Equal(f.Price.Round(2)) {
		return fmt.Errorf("%w: price must have at most 2 decimal places, got %s", ErrValidation, f.Price)
	}
	return nil
}

// Apply copies validated fields onto p. InStock defaults to true when omitted
// and missing lists become empty.
func (f ProductFields) Apply(p *Product) {
	p.Name = f.Name
	p.Description = f.Description
	if f.Price != nil {
		p.Price = *f.Price
	}
	p.Category = f.Category
	p.Image = f.Image
	p.Sizes = append(make([]string, 0, len(f.Sizes)), f.Sizes...)
	p.Colors = append(make([]string, 0, len(f.Colors)), f.Colors...)
	p.InStock = true
	if f.InStock != nil {
		p.InStock = *f.InStock
	}
}

// MatchesCategory reports whether p passes the given list filter.
func (p Product) MatchesCategory(category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.Category == category
}

package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name" binding:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description string          `json:"description"`

	// Denormalized names, matched exactly (case-sensitive) against
	// Category.Name / Department.Name. See services.CatalogService for
	// the delete policy that keeps them from dangling.
	Category   string `gorm:"index" json:"category"`
	Department string `gorm:"index" json:"department"`
}

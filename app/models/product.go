package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Sku         string          `gorm:"size:100;uniqueIndex" json:"sku"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	Color       string          `gorm:"size:50;index" json:"color"`
	Image       string          `gorm:"size:255" json:"image"`
	IsFeatured  bool            `gorm:"default:false" json:"is_featured"`
	// A product without a category is valid; deleting a category leaves
	// its products with a NULL reference, it never deletes them.
	CategoryID *string   `gorm:"size:36;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

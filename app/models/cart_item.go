package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart. The composite primary key
// on (user_id, product_id) guarantees at most one row per pair, which is
// what makes the insert-or-increment upsert safe under concurrent adds.
type CartItem struct {
	UserID    string          `gorm:"size:36;primaryKey" json:"user_id"`
	ProductID string          `gorm:"size:36;primaryKey" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Subtotal  decimal.Decimal `gorm:"-" json:"subtotal"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

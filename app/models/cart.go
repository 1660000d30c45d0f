package models

import "github.com/shopspring/decimal"

// Cart is the aggregate view of one user's cart rows. It is not a table:
// the rows live in cart_items and the totals are computed on read.
type Cart struct {
	UserID          string          `json:"user_id"`
	Items           []CartItem      `json:"items"`
	TotalItems      int             `json:"total_items"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	GrandTotalLabel string          `json:"grand_total_label"`
}

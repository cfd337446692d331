package domain

import "time"

// CartItem is one (user, product) row held prior to checkout. Quantity is
// always at least 1; decrementing from 1 deletes the row instead.
type CartItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TotalCents is the live line total: quantity times the product's current
// price. Cart totals always reread the live price; they are never snapshots.
func (i CartItem) TotalCents() int64 {
	return int64(i.Quantity) * i.PriceCents
}

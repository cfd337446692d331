package domain

import "time"

// Order statuses. Checkout creates orders as pending; fulfillment moves
// them forward through shipped to delivered. Administrators may set any
// enumerated status directly.
const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCanceled  = "canceled"
)

// ValidOrderStatus reports whether s is one of the enumerated statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCanceled:
		return true
	}
	return false
}

// Order is an immutable snapshot of checked-out cart items. TotalCents is
// frozen at creation and never recomputed from live product prices.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"-"`
	Status     string      `json:"status"`
	TotalCents int64       `json:"totalCents"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

// OrderItem records quantity and the product price at purchase time.
// BuyPriceCents is independent of later product price changes.
type OrderItem struct {
	ID            string `json:"id"`
	OrderID       string `json:"-"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName,omitempty"`
	Quantity      int    `json:"quantity"`
	BuyPriceCents int64  `json:"buyPriceCents"`
}

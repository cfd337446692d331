package domain

import "time"

// Review is a rating plus text a user leaves on a product. Creation is
// gated by purchase history: the user must have a delivered order
// containing the product.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Username  string    `json:"username,omitempty"`
	ProductID string    `json:"productId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

package cart

import (
	"context"

	"storefront/internal/domain"
)

// AdjustOutcome reports what a quantity adjustment did to a single line.
type AdjustOutcome struct {
	Deleted        bool
	Quantity       int
	ItemTotalCents int64
}

// ToggleOutcome reports whether a toggle created or removed the line.
type ToggleOutcome struct {
	Added bool
}

type Repository interface {
	// Add upserts the (user, product) line, incrementing quantity by one
	// when it already exists.
	Add(ctx context.Context, userID, productID string) error
	// Toggle removes the (user, product) line when present, otherwise
	// creates it with quantity 1.
	Toggle(ctx context.Context, userID, productID string) (ToggleOutcome, error)
	// Adjust applies delta (+1 or -1) to the line's quantity inside one
	// transaction. Decrementing from quantity 1 deletes the line.
	Adjust(ctx context.Context, userID, itemID string, delta int) (AdjustOutcome, error)
	// Delete removes the line; domain.ErrNotFound when it does not exist
	// or belongs to another user.
	Delete(ctx context.Context, userID, itemID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Summary returns the user's line count and cart total at live
	// product prices.
	Summary(ctx context.Context, userID string) (int, int64, error)
	ExistsByProduct(ctx context.Context, userID, productID string) (bool, error)
}

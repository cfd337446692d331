package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// CreateFromCartItems converts the user's selected cart lines into a
	// pending order in a single transaction: total and per-line buy
	// prices are snapshotted from live product prices, then the consumed
	// cart lines are deleted. Ids not owned by the user are ignored;
	// domain.ErrNotFound when no selected line survives.
	CreateFromCartItems(ctx context.Context, userID string, itemIDs []string) (*domain.Order, error)
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// SetStatus overwrites the status unconditionally. Status validity
	// and privilege are checked by the service layer.
	SetStatus(ctx context.Context, orderID, status string) error
	// HasDeliveredProduct reports whether the user owns a delivered
	// order containing the product.
	HasDeliveredProduct(ctx context.Context, userID, productID string) (bool, error)
}

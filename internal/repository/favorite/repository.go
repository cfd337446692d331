package favorite

import "context"

type Repository interface {
	// Toggle flips the (user, product) favorite; returns true when the
	// pair was added, false when it was removed.
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}

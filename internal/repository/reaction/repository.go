package reaction

import (
	"context"

	"storefront/internal/domain"
)

// Counts aggregates reactions for one target.
type Counts struct {
	Likes    int
	Dislikes int
}

type Repository interface {
	// Upsert sets the user's polarity toward the target, overwriting a
	// previous polarity if one exists.
	Upsert(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error)
	// Delete removes the user's reaction; domain.ErrNotFound when none
	// exists.
	Delete(ctx context.Context, userID, targetKind, targetID string) error
	Get(ctx context.Context, userID, targetKind, targetID string) (*domain.Reaction, error)
	CountsForTarget(ctx context.Context, targetKind, targetID string) (Counts, error)
}

package review

import (
	"context"

	"storefront/internal/domain"
)

type CreateReviewInput struct {
	UserID    string
	ProductID string
	Rating    int
	Body      string
}

type Repository interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain"
	reviewrepo "storefront/internal/repository/review"
)

// MaxBodyLength bounds review text, counted in runes.
const MaxBodyLength = 1000

type Service struct {
	repo     reviewRepo
	orders   orderRepo
	products productRepo
}

type reviewRepo interface {
	Create(ctx context.Context, in reviewrepo.CreateReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

type orderRepo interface {
	HasDeliveredProduct(ctx context.Context, userID, productID string) (bool, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo reviewrepo.Repository, orders orderRepo, products productRepo) *Service {
	return &Service{repo: repo, orders: orders, products: products}
}

// CanReview reports review eligibility: the user must own a delivered
// order containing the product. Eligibility, once earned, is never
// revoked by later status changes.
func (s *Service) CanReview(ctx context.Context, userID, productID string) (bool, error) {
	return s.orders.HasDeliveredProduct(ctx, userID, productID)
}

// Submit validates and stores a review. Rating must be 1..5, the body
// non-blank and at most MaxBodyLength runes, and the user eligible.
func (s *Service) Submit(ctx context.Context, userID, productID string, rating int, body string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: review text required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return nil, fmt.Errorf("%w: review text exceeds %d characters", domain.ErrInvalidInput, MaxBodyLength)
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	eligible, err := s.orders.HasDeliveredProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, fmt.Errorf("%w: no delivered order containing this product", domain.ErrForbidden)
	}

	return s.repo.Create(ctx, reviewrepo.CreateReviewInput{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Body:      body,
	})
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// Delete removes a review; admin only. There is no edit path.
func (s *Service) Delete(ctx context.Context, actor domain.User, reviewID string) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, reviewID)
}

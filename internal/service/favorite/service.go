package favorite

import (
	"context"

	"storefront/internal/domain"
	favoriterepo "storefront/internal/repository/favorite"
)

type Service struct {
	repo     favoriterepo.Repository
	products productRepo
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo favoriterepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type ToggleResult struct {
	Action string `json:"action"`
}

// Toggle flips the favorite mark on a product for the user.
func (s *Service) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	added, err := s.repo.Toggle(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	action := "removed"
	if added {
		action = "added"
	}
	return &ToggleResult{Action: action}, nil
}

func (s *Service) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListProductIDs(ctx, userID)
}

package order

import (
	"context"
	"fmt"

	"storefront/internal/domain"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	CreateFromCartItems(ctx context.Context, userID string, itemIDs []string) (*domain.Order, error)
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	SetStatus(ctx context.Context, orderID, status string) error
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// Place converts the selected cart lines into a pending order. An empty
// selection is rejected before touching the store; ids the user does
// not own are silently excluded by the repository.
func (s *Service) Place(ctx context.Context, userID string, itemIDs []string) (*domain.Order, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: no items selected", domain.ErrInvalidInput)
	}
	return s.repo.CreateFromCartItems(ctx, userID, itemIDs)
}

func (s *Service) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, userID, orderID)
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus overwrites an order's status. Only admins may call it, and
// the value must be one of the enumerated statuses; beyond that any
// transition is allowed, including backwards ones.
func (s *Service) SetStatus(ctx context.Context, actor domain.User, orderID, status string) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.repo.SetStatus(ctx, orderID, status)
}

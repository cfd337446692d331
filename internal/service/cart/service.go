package cart

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

// Directions accepted by AdjustQuantity.
const (
	DirectionIncrement = "increment"
	DirectionDecrement = "decrement"
)

type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	Add(ctx context.Context, userID, productID string) error
	Toggle(ctx context.Context, userID, productID string) (cartrepo.ToggleOutcome, error)
	Adjust(ctx context.Context, userID, itemID string, delta int) (cartrepo.AdjustOutcome, error)
	Delete(ctx context.Context, userID, itemID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Summary(ctx context.Context, userID string) (int, int64, error)
	ExistsByProduct(ctx context.Context, userID, productID string) (bool, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// View is the user's cart as rendered: lines plus a live-priced total.
type View struct {
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalCents int64             `json:"totalCents"`
}

type AddResult struct {
	ItemCount int `json:"cartItemCount"`
}

type RemoveResult struct {
	ItemID     string `json:"itemId"`
	ItemCount  int    `json:"cartItemCount"`
	TotalCents int64  `json:"cartTotalCents"`
}

type ToggleResult struct {
	Action    string `json:"action"`
	ItemCount int    `json:"cartItemCount"`
}

type AdjustResult struct {
	Deleted        bool   `json:"deleted"`
	ItemID         string `json:"itemId"`
	Quantity       int    `json:"quantity,omitempty"`
	ItemTotalCents int64  `json:"itemTotalCents,omitempty"`
	ItemCount      int    `json:"cartItemCount"`
	TotalCents     int64  `json:"cartTotalCents"`
}

// Get returns the user's cart with live product prices.
func (s *Service) Get(ctx context.Context, userID string) (*View, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &View{Items: items, ItemCount: len(items)}
	for _, item := range items {
		view.TotalCents += item.TotalCents()
	}
	return view, nil
}

// HasProduct reports whether the user's cart already holds the product,
// regardless of quantity. Product listings use it to mark items as
// already in the cart.
func (s *Service) HasProduct(ctx context.Context, userID, productID string) (bool, error) {
	return s.repo.ExistsByProduct(ctx, userID, productID)
}

// Add puts one unit of the product into the cart, incrementing the
// existing line's quantity when there is one. Stock is not checked.
func (s *Service) Add(ctx context.Context, userID, productID string) (*AddResult, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	count, _, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AddResult{ItemCount: count}, nil
}

// Remove deletes the line by id; domain.ErrNotFound when the line does
// not belong to the user.
func (s *Service) Remove(ctx context.Context, userID, itemID string) (*RemoveResult, error) {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		return nil, err
	}
	count, total, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RemoveResult{ItemID: itemID, ItemCount: count, TotalCents: total}, nil
}

// Toggle matches by product rather than line id: an existing line is
// removed whole, otherwise a quantity-1 line is created. This coexists
// with Add/Remove because callers use it for a different affordance
// (quick-add on listings vs per-line cart controls).
func (s *Service) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	outcome, err := s.repo.Toggle(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	count, _, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	action := "removed"
	if outcome.Added {
		action = "added"
	}
	return &ToggleResult{Action: action, ItemCount: count}, nil
}

// AdjustQuantity applies a single increment or decrement to the line.
// Decrementing a quantity-1 line deletes it; no zero-quantity row is
// ever persisted.
func (s *Service) AdjustQuantity(ctx context.Context, userID, itemID, direction string) (*AdjustResult, error) {
	var delta int
	switch direction {
	case DirectionIncrement:
		delta = 1
	case DirectionDecrement:
		delta = -1
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, direction)
	}

	outcome, err := s.repo.Adjust(ctx, userID, itemID, delta)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	count, total, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AdjustResult{
		Deleted:        outcome.Deleted,
		ItemID:         itemID,
		Quantity:       outcome.Quantity,
		ItemTotalCents: outcome.ItemTotalCents,
		ItemCount:      count,
		TotalCents:     total,
	}, nil
}

package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type stubRepo struct {
	addErr         error
	lastAddUser    string
	lastAddProduct string

	toggleOutcome cartrepo.ToggleOutcome
	toggleErr     error

	adjustOutcome cartrepo.AdjustOutcome
	adjustErr     error
	lastDelta     int

	deleteErr      error
	lastDeleteItem string

	items   []domain.CartItem
	listErr error

	count      int
	totalCents int64
	summaryErr error

	exists         bool
	lastExistsUser string
	lastExistsProd string
}

func (s *stubRepo) Add(_ context.Context, userID, productID string) error {
	s.lastAddUser = userID
	s.lastAddProduct = productID
	return s.addErr
}

func (s *stubRepo) Toggle(_ context.Context, _, _ string) (cartrepo.ToggleOutcome, error) {
	return s.toggleOutcome, s.toggleErr
}

func (s *stubRepo) Adjust(_ context.Context, _, _ string, delta int) (cartrepo.AdjustOutcome, error) {
	s.lastDelta = delta
	return s.adjustOutcome, s.adjustErr
}

func (s *stubRepo) Delete(_ context.Context, _, itemID string) error {
	s.lastDeleteItem = itemID
	return s.deleteErr
}

func (s *stubRepo) ListByUser(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubRepo) Summary(_ context.Context, _ string) (int, int64, error) {
	return s.count, s.totalCents, s.summaryErr
}

func (s *stubRepo) ExistsByProduct(_ context.Context, userID, productID string) (bool, error) {
	s.lastExistsUser = userID
	s.lastExistsProd = productID
	return s.exists, nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func TestGetSumsLivePrices(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{
		{ID: "i1", Quantity: 2, PriceCents: 1000},
		{ID: "i2", Quantity: 1, PriceCents: 350},
	}}
	svc := &Service{repo: repo}
	view, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ItemCount != 2 {
		t.Fatalf("expected 2 items, got %d", view.ItemCount)
	}
	if view.TotalCents != 2350 {
		t.Fatalf("expected total 2350, got %d", view.TotalCents)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, productRepo: &stubProductRepo{err: domain.ErrNotFound}}
	_, err := svc.Add(context.Background(), "u1", "p1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddReturnsCount(t *testing.T) {
	repo := &stubRepo{count: 3}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{product: &domain.Product{ID: "p1"}}}
	result, err := svc.Add(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ItemCount != 3 {
		t.Fatalf("expected count 3, got %d", result.ItemCount)
	}
	if repo.lastAddUser != "u1" || repo.lastAddProduct != "p1" {
		t.Fatalf("add not called as expected: %s %s", repo.lastAddUser, repo.lastAddProduct)
	}
}

func TestRemoveNotOwned(t *testing.T) {
	svc := &Service{repo: &stubRepo{deleteErr: domain.ErrNotFound}}
	_, err := svc.Remove(context.Background(), "u1", "i1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveReturnsSummary(t *testing.T) {
	repo := &stubRepo{count: 1, totalCents: 1999}
	svc := &Service{repo: repo}
	result, err := svc.Remove(context.Background(), "u1", "i1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ItemID != "i1" || result.ItemCount != 1 || result.TotalCents != 1999 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if repo.lastDeleteItem != "i1" {
		t.Fatalf("delete not called with i1")
	}
}

func TestToggleAdded(t *testing.T) {
	repo := &stubRepo{toggleOutcome: cartrepo.ToggleOutcome{Added: true}, count: 2}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{product: &domain.Product{ID: "p1"}}}
	result, err := svc.Toggle(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != "added" || result.ItemCount != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestToggleRemoved(t *testing.T) {
	repo := &stubRepo{count: 0}
	svc := &Service{repo: repo, productRepo: &stubProductRepo{product: &domain.Product{ID: "p1"}}}
	result, err := svc.Toggle(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != "removed" {
		t.Fatalf("expected removed, got %s", result.Action)
	}
}

func TestAdjustQuantityUnknownDirection(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.AdjustQuantity(context.Background(), "u1", "i1", "sideways")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAdjustQuantityIncrement(t *testing.T) {
	repo := &stubRepo{
		adjustOutcome: cartrepo.AdjustOutcome{Quantity: 3, ItemTotalCents: 3000},
		count:         1,
		totalCents:    3000,
	}
	svc := &Service{repo: repo}
	result, err := svc.AdjustQuantity(context.Background(), "u1", "i1", DirectionIncrement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDelta != 1 {
		t.Fatalf("expected delta +1, got %d", repo.lastDelta)
	}
	if result.Deleted || result.Quantity != 3 || result.ItemTotalCents != 3000 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAdjustQuantityDecrementDeletesLastUnit(t *testing.T) {
	repo := &stubRepo{
		adjustOutcome: cartrepo.AdjustOutcome{Deleted: true},
		count:         0,
		totalCents:    0,
	}
	svc := &Service{repo: repo}
	result, err := svc.AdjustQuantity(context.Background(), "u1", "i1", DirectionDecrement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDelta != -1 {
		t.Fatalf("expected delta -1, got %d", repo.lastDelta)
	}
	if !result.Deleted {
		t.Fatalf("expected deleted result: %+v", result)
	}
	if result.ItemCount != 0 || result.TotalCents != 0 {
		t.Fatalf("unexpected summary: %+v", result)
	}
}

func TestAdjustQuantityNotOwned(t *testing.T) {
	svc := &Service{repo: &stubRepo{adjustErr: domain.ErrNotFound}}
	_, err := svc.AdjustQuantity(context.Background(), "u1", "i1", DirectionIncrement)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHasProduct(t *testing.T) {
	repo := &stubRepo{exists: true}
	svc := &Service{repo: repo}

	ok, err := svc.HasProduct(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected product reported in cart")
	}
	if repo.lastExistsUser != "u1" || repo.lastExistsProd != "p1" {
		t.Fatalf("lookup scoped wrong: %q/%q", repo.lastExistsUser, repo.lastExistsProd)
	}

	svc = &Service{repo: &stubRepo{exists: false}}
	ok, err = svc.HasProduct(context.Background(), "u1", "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected product reported absent")
	}
}

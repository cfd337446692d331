package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubRepo struct {
	created    *domain.Order
	createErr  error
	createdFor []string
	calls      int

	order   *domain.Order
	getErr  error
	orders  []domain.Order
	listErr error

	lastStatusOrder string
	lastStatus      string
	setStatusErr    error
}

func (s *stubRepo) CreateFromCartItems(_ context.Context, _ string, itemIDs []string) (*domain.Order, error) {
	s.calls++
	s.createdFor = itemIDs
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.getErr
}

func (s *stubRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.listErr
}

func (s *stubRepo) SetStatus(_ context.Context, orderID, status string) error {
	s.lastStatusOrder = orderID
	s.lastStatus = status
	return s.setStatusErr
}

func TestPlaceEmptySelection(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	_, err := svc.Place(context.Background(), "u1", nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be called for empty selection")
	}
}

func TestPlaceHappyPath(t *testing.T) {
	expected := &domain.Order{ID: "o1", Status: domain.OrderPending, TotalCents: 4298}
	repo := &stubRepo{created: expected}
	svc := New(repo)
	got, err := svc.Place(context.Background(), "u1", []string{"i1", "i2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(repo.createdFor) != 2 {
		t.Fatalf("expected 2 ids passed through, got %v", repo.createdFor)
	}
}

func TestPlaceNoOwnedLines(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrNotFound}
	svc := New(repo)
	_, err := svc.Place(context.Background(), "u1", []string{"someone-elses"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetStatusRequiresAdmin(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	err := svc.SetStatus(context.Background(), domain.User{ID: "u1"}, "o1", domain.OrderShipped)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.lastStatus != "" {
		t.Fatalf("repo must not be called without privilege")
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := New(&stubRepo{})
	err := svc.SetStatus(context.Background(), domain.User{ID: "a1", IsAdmin: true}, "o1", "lost")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

// Any enumerated status is reachable from any other; there is no
// transition table. Backwards moves like delivered -> pending are
// deliberately allowed for administrators.
func TestSetStatusAllowsAnyTransition(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	admin := domain.User{ID: "a1", IsAdmin: true}
	for _, status := range []string{domain.OrderDelivered, domain.OrderPending, domain.OrderCanceled, domain.OrderShipped} {
		if err := svc.SetStatus(context.Background(), admin, "o1", status); err != nil {
			t.Fatalf("SetStatus(%s): %v", status, err)
		}
		if repo.lastStatus != status {
			t.Fatalf("expected status %s recorded, got %s", status, repo.lastStatus)
		}
	}
}

func TestGetPassesThroughNotFound(t *testing.T) {
	svc := New(&stubRepo{getErr: domain.ErrNotFound})
	_, err := svc.Get(context.Background(), "u1", "o1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

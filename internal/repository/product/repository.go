package product

import (
	"context"

	"storefront/internal/domain"
)

// Filter narrows product listings. Zero values mean "no constraint".
type Filter struct {
	NameSubstring string
	CategorySlug  string
	MinPriceCents *int64
	MaxPriceCents *int64
	Limit         int
	Offset        int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

package catalog

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
	categoryrepo "storefront/internal/repository/category"
	productrepo "storefront/internal/repository/product"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type Service struct {
	products   productRepo
	categories categoryRepo
}

type productRepo interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

func New(products productrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{products: products, categories: categories}
}

// ListInput carries catalog filters as parsed by the presentation layer.
type ListInput struct {
	NameSubstring string
	CategorySlug  string
	MinPriceCents *int64
	MaxPriceCents *int64
	Page          int
	PerPage       int
}

type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"perPage"`
}

func (s *Service) ListProducts(ctx context.Context, in ListInput) (*ProductPage, error) {
	if in.MinPriceCents != nil && *in.MinPriceCents < 0 {
		return nil, fmt.Errorf("%w: min price must not be negative", domain.ErrInvalidInput)
	}
	if in.MaxPriceCents != nil && *in.MaxPriceCents < 0 {
		return nil, fmt.Errorf("%w: max price must not be negative", domain.ErrInvalidInput)
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	categorySlug := strings.TrimSpace(in.CategorySlug)
	if categorySlug != "" {
		// A filter naming a category that does not exist is a broken
		// reference, not an empty result set.
		if _, err := s.categories.GetBySlug(ctx, categorySlug); err != nil {
			return nil, err
		}
	}

	products, total, err := s.products.List(ctx, productrepo.Filter{
		NameSubstring: strings.TrimSpace(in.NameSubstring),
		CategorySlug:  categorySlug,
		MinPriceCents: in.MinPriceCents,
		MaxPriceCents: in.MaxPriceCents,
		Limit:         perPage,
		Offset:        (page - 1) * perPage,
	})
	if err != nil {
		return nil, err
	}
	return &ProductPage{Products: products, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// SaveProduct creates or updates a product; admin only.
func (s *Service) SaveProduct(ctx context.Context, actor domain.User, p domain.Product) (*domain.Product, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: product name required", domain.ErrInvalidInput)
	}
	if p.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if p.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrInvalidInput)
	}
	if p.CategoryID == "" {
		return nil, fmt.Errorf("%w: category required", domain.ErrInvalidInput)
	}
	return s.products.Upsert(ctx, p)
}

// DeleteProduct removes a product; admin only.
func (s *Service) DeleteProduct(ctx context.Context, actor domain.User, id string) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	return s.products.Delete(ctx, id)
}

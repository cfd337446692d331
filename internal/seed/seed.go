package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type categorySeed struct {
	Name        string
	Slug        string
	Description string
}

type productSeed struct {
	CategorySlug string
	Name         string
	Description  string
	PriceCents   int64
	Stock        int
}

// Apply inserts basic seed data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Apparel", Slug: "apparel", Description: "Clothing and accessories"},
		{Name: "Kitchen", Slug: "kitchen", Description: "Mugs, boards, and utensils"},
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		id, err := upsertCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	products := []productSeed{
		{CategorySlug: "apparel", Name: "Plain T-Shirt", Description: "Soft cotton tee", PriceCents: 1999, Stock: 100},
		{CategorySlug: "apparel", Name: "Canvas Tote", Description: "Everyday carry bag", PriceCents: 1499, Stock: 60},
		{CategorySlug: "kitchen", Name: "Ceramic Mug", Description: "Holds 350ml", PriceCents: 1299, Stock: 80},
		{CategorySlug: "kitchen", Name: "Oak Cutting Board", Description: "End-grain oak", PriceCents: 3499, Stock: 25},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryIDs[p.CategorySlug], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureAdmin(ctx, pool, "admin", "admin@example.com", "changeme-admin"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	if err := upsertArticle(ctx, pool, "Welcome to the shop", "welcome", "First post: the storefront is open."); err != nil {
		return fmt.Errorf("upsert article: %w", err)
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (string, error) {
	const q = `
INSERT INTO categories (name, slug, description)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug, c.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (category_id, name, description, price_cents, stock)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $2)
`
	_, err := pool.Exec(ctx, q, categoryID, p.Name, p.Description, p.PriceCents, p.Stock)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (username, email, password_hash, is_admin)
VALUES ($1, $2, $3, true)
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, username, email, string(hashed))
	return err
}

func upsertArticle(ctx context.Context, pool *pgxpool.Pool, title, slug, body string) error {
	const q = `
INSERT INTO articles (title, slug, body)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body
`
	_, err := pool.Exec(ctx, q, title, slug, body)
	return err
}

package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `p.id::text, p.category_id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.stock, COALESCE(p.image_url, ''), p.created_at, p.updated_at`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, int, error) {
	var conds []string
	var args []interface{}

	if f.NameSubstring != "" {
		args = append(args, "%"+f.NameSubstring+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		conds = append(conds, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if f.MinPriceCents != nil {
		args = append(args, *f.MinPriceCents)
		conds = append(conds, fmt.Sprintf("p.price_cents >= $%d", len(args)))
	}
	if f.MaxPriceCents != nil {
		args = append(args, *f.MaxPriceCents)
		conds = append(conds, fmt.Sprintf("p.price_cents <= $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := fmt.Sprintf(`
SELECT COUNT(*)
FROM products p
JOIN categories c ON c.id = p.category_id
%s`, where)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	limitArg := len(args)
	args = append(args, f.Offset)
	offsetArg := len(args)

	listQuery := fmt.Sprintf(`
SELECT %s
FROM products p
JOIN categories c ON c.id = p.category_id
%s
ORDER BY p.created_at DESC
LIMIT $%d OFFSET $%d`, productColumns, where, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	r.logger.Printf("product repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products p
WHERE p.id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, category_id, name, description, price_cents, stock, image_url)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, NULLIF($7, ''))
ON CONFLICT (id) DO UPDATE SET
    category_id = EXCLUDED.category_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    image_url = EXCLUDED.image_url,
    updated_at = now()
RETURNING id::text, created_at, updated_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.CategoryID, p.Name, p.Description, p.PriceCents, p.Stock, p.ImageURL).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%s error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s name=%s", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

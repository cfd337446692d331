package review

import (
	"context"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (user_id, product_id, rating, body)
VALUES ($1, $2, $3, $4)
RETURNING id::text, user_id::text, product_id::text, rating, body, created_at
`
	var rev domain.Review
	if err := r.pool.QueryRow(ctx, q, in.UserID, in.ProductID, in.Rating, in.Body).Scan(
		&rev.ID, &rev.UserID, &rev.ProductID, &rev.Rating, &rev.Body, &rev.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	const q = `
SELECT rv.id::text, rv.user_id::text, u.username, rv.product_id::text, rv.rating, rv.body, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.user_id
WHERE rv.product_id = $1
ORDER BY rv.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.Username, &rev.ProductID, &rev.Rating, &rev.Body, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Delete(ctx context.Context, reviewID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

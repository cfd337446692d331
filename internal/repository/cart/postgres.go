package cart

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Add(ctx context.Context, userID, productID string) error {
	const q = `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + 1
`
	_, err := r.pool.Exec(ctx, q, userID, productID)
	return err
}

func (r *postgresRepo) Toggle(ctx context.Context, userID, productID string) (ToggleOutcome, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return ToggleOutcome{}, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		return ToggleOutcome{}, err
	}

	out := ToggleOutcome{}
	if cmd.RowsAffected() == 0 {
		// A concurrent toggle can insert the line between the delete
		// above and this insert; the unique index turns that race into
		// a conflict rather than a duplicate row.
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, 1)
`, userID, productID); err != nil {
			return ToggleOutcome{}, conflictOnDuplicate(err)
		}
		out.Added = true
	}

	return out, tx.Commit(ctx)
}

func (r *postgresRepo) Adjust(ctx context.Context, userID, itemID string, delta int) (AdjustOutcome, error) {
	if delta != 1 && delta != -1 {
		return AdjustOutcome{}, fmt.Errorf("%w: delta must be +1 or -1", domain.ErrInvalidInput)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return AdjustOutcome{}, err
	}
	defer tx.Rollback(ctx)

	// Lock the row so concurrent adjustments cannot interleave the
	// read of quantity with the write.
	var quantity int
	var priceCents int64
	err = tx.QueryRow(ctx, `
SELECT ci.quantity, p.price_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.id = $1 AND ci.user_id = $2
FOR UPDATE OF ci
`, itemID, userID).Scan(&quantity, &priceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdjustOutcome{}, domain.ErrNotFound
		}
		return AdjustOutcome{}, err
	}

	if delta < 0 && quantity == 1 {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID); err != nil {
			return AdjustOutcome{}, err
		}
		return AdjustOutcome{Deleted: true}, tx.Commit(ctx)
	}

	newQty := quantity + delta
	if _, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE id = $2
`, newQty, itemID); err != nil {
		return AdjustOutcome{}, err
	}

	return AdjustOutcome{
		Quantity:       newQty,
		ItemTotalCents: int64(newQty) * priceCents,
	}, tx.Commit(ctx)
}

func (r *postgresRepo) Delete(ctx context.Context, userID, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE id = $1 AND user_id = $2
`, itemID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT ci.id::text, ci.user_id::text, ci.product_id::text, p.name, p.price_cents, ci.quantity, ci.created_at
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.ProductName, &item.PriceCents, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Summary(ctx context.Context, userID string) (int, int64, error) {
	const q = `
SELECT COUNT(*), COALESCE(SUM(ci.quantity * p.price_cents), 0)
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
`
	var count int
	var totalCents int64
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&count, &totalCents); err != nil {
		return 0, 0, err
	}
	return count, totalCents, nil
}

func conflictOnDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *postgresRepo) ExistsByProduct(ctx context.Context, userID, productID string) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1 FROM cart_items WHERE user_id = $1 AND product_id = $2
)
`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, userID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

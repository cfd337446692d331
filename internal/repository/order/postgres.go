package order

import (
	"context"
	"errors"
	"io"
	"log"

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

type selectedLine struct {
	cartItemID string
	productID  string
	quantity   int
	priceCents int64
}

func (r *postgresRepo) CreateFromCartItems(ctx context.Context, userID string, itemIDs []string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the selected lines for the duration of the conversion so a
	// concurrent quantity adjustment cannot interleave.
	rows, err := tx.Query(ctx, `
SELECT ci.id::text, ci.product_id::text, ci.quantity, p.price_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1 AND ci.id = ANY($2::uuid[])
FOR UPDATE OF ci
`, userID, itemIDs)
	if err != nil {
		return nil, err
	}

	var lines []selectedLine
	for rows.Next() {
		var l selectedLine
		if err := rows.Scan(&l.cartItemID, &l.productID, &l.quantity, &l.priceCents); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrNotFound
	}

	var totalCents int64
	for _, l := range lines {
		totalCents += int64(l.quantity) * l.priceCents
	}

	var ord domain.Order
	ord.UserID = userID
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents)
VALUES ($1, $2)
RETURNING id::text, status, total_cents, created_at
`, userID, totalCents).Scan(&ord.ID, &ord.Status, &ord.TotalCents, &ord.CreatedAt); err != nil {
		return nil, err
	}

	consumed := make([]string, 0, len(lines))
	for _, l := range lines {
		var item domain.OrderItem
		item.OrderID = ord.ID
		if err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, buy_price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id::text, product_id::text, quantity, buy_price_cents
`, ord.ID, l.productID, l.quantity, l.priceCents).Scan(&item.ID, &item.ProductID, &item.Quantity, &item.BuyPriceCents); err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, item)
		consumed = append(consumed, l.cartItemID)
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE id = ANY($1::uuid[])
`, consumed); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%s user_id=%s lines=%d total_cents=%d", ord.ID, userID, len(ord.Items), totalCents)
	return &ord, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, status, total_cents, created_at
FROM orders
WHERE id = $1 AND user_id = $2
`
	var ord domain.Order
	err := r.pool.QueryRow(ctx, q, orderID, userID).Scan(&ord.ID, &ord.UserID, &ord.Status, &ord.TotalCents, &ord.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT oi.id::text, oi.order_id::text, oi.product_id::text, p.name, oi.quantity, oi.buy_price_cents
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY p.name ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, ord.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.BuyPriceCents); err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, status, total_cents, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var ord domain.Order
		if err := rows.Scan(&ord.ID, &ord.UserID, &ord.Status, &ord.TotalCents, &ord.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) SetStatus(ctx context.Context, orderID, status string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1
WHERE id = $2
`, status, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: set status order_id=%s status=%s", orderID, status)
	return nil
}

func (r *postgresRepo) HasDeliveredProduct(ctx context.Context, userID, productID string) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1
	FROM order_items oi
	JOIN orders o ON o.id = oi.order_id
	WHERE o.user_id = $1 AND o.status = 'delivered' AND oi.product_id = $2
)
`
	var eligible bool
	if err := r.pool.QueryRow(ctx, q, userID, productID).Scan(&eligible); err != nil {
		return false, err
	}
	return eligible, nil
}

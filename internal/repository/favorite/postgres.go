package favorite

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
DELETE FROM favorites
WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		return false, err
	}

	added := false
	if cmd.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, `
INSERT INTO favorites (user_id, product_id)
VALUES ($1, $2)
`, userID, productID); err != nil {
			return false, err
		}
		added = true
	}

	return added, tx.Commit(ctx)
}

func (r *postgresRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT product_id::text
FROM favorites
WHERE user_id = $1
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

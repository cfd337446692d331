package reaction

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Upsert(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error) {
	const q = `
INSERT INTO reactions (user_id, target_kind, target_id, polarity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, target_kind, target_id) DO UPDATE
SET polarity = EXCLUDED.polarity
RETURNING id::text, user_id::text, target_kind, target_id::text, polarity, created_at
`
	var re domain.Reaction
	if err := r.pool.QueryRow(ctx, q, userID, targetKind, targetID, polarity).Scan(
		&re.ID, &re.UserID, &re.TargetKind, &re.TargetID, &re.Polarity, &re.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &re, nil
}

func (r *postgresRepo) Delete(ctx context.Context, userID, targetKind, targetID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM reactions
WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
`, userID, targetKind, targetID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, userID, targetKind, targetID string) (*domain.Reaction, error) {
	const q = `
SELECT id::text, user_id::text, target_kind, target_id::text, polarity, created_at
FROM reactions
WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
`
	var re domain.Reaction
	if err := r.pool.QueryRow(ctx, q, userID, targetKind, targetID).Scan(
		&re.ID, &re.UserID, &re.TargetKind, &re.TargetID, &re.Polarity, &re.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &re, nil
}

func (r *postgresRepo) CountsForTarget(ctx context.Context, targetKind, targetID string) (Counts, error) {
	const q = `
SELECT
	COUNT(*) FILTER (WHERE polarity = 'like'),
	COUNT(*) FILTER (WHERE polarity = 'dislike')
FROM reactions
WHERE target_kind = $1 AND target_id = $2
`
	var c Counts
	if err := r.pool.QueryRow(ctx, q, targetKind, targetID).Scan(&c.Likes, &c.Dislikes); err != nil {
		return Counts{}, err
	}
	return c, nil
}

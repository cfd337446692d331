package user

import (
	"context"
	"errors"

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

const userColumns = `id::text, username, email, password_hash, is_admin, COALESCE(phone, ''), COALESCE(avatar_url, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	const q = `
INSERT INTO users (username, email, password_hash, is_admin)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns
	u, err := scanUser(r.pool.QueryRow(ctx, q, in.Username, in.Email, in.PasswordHash, in.IsAdmin))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return notFoundOnNoRows(scanUser(r.pool.QueryRow(ctx, q, id)))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return notFoundOnNoRows(scanUser(r.pool.QueryRow(ctx, q, username)))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error) {
	const q = `
UPDATE users
SET email = COALESCE($2, email),
    phone = COALESCE($3, phone),
    avatar_url = COALESCE($4, avatar_url)
WHERE id = $1
RETURNING ` + userColumns
	return notFoundOnNoRows(scanUser(r.pool.QueryRow(ctx, q, id, in.Email, in.Phone, in.AvatarURL)))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.Phone, &u.AvatarURL, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func notFoundOnNoRows(u *domain.User, err error) (*domain.User, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

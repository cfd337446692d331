package article

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Article, error) {
	const q = `
SELECT id::text, title, slug, body, created_at
FROM articles
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	const q = `
SELECT id::text, title, slug, body, created_at
FROM articles
WHERE slug = $1
`
	var a domain.Article
	if err := r.pool.QueryRow(ctx, q, slug).Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	const q = `
INSERT INTO articles (title, slug, body)
VALUES ($1, $2, $3)
RETURNING id::text, title, slug, body, created_at
`
	var a domain.Article
	if err := r.pool.QueryRow(ctx, q, in.Title, in.Slug, in.Body).Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) CommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	const q = `
SELECT c.id::text, c.article_id::text, c.user_id::text, u.username, c.parent_id::text, c.body, c.created_at
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.article_id = $1
ORDER BY c.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Username, &c.ParentID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		flat = append(flat, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[string]int)
	var roots []domain.Comment
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			byID[c.ID] = len(roots) - 1
		}
	}
	for _, c := range flat {
		if c.ParentID == nil {
			continue
		}
		if idx, ok := byID[*c.ParentID]; ok {
			roots[idx].Replies = append(roots[idx].Replies, c)
		}
	}
	return roots, nil
}

func (r *postgresRepo) GetComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	const q = `
SELECT id::text, article_id::text, user_id::text, parent_id::text, body, created_at
FROM comments
WHERE id = $1
`
	var c domain.Comment
	if err := r.pool.QueryRow(ctx, q, commentID).Scan(&c.ID, &c.ArticleID, &c.UserID, &c.ParentID, &c.Body, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) CreateComment(ctx context.Context, in CreateCommentInput) (*domain.Comment, error) {
	const q = `
INSERT INTO comments (article_id, user_id, parent_id, body)
VALUES ($1, $2, $3, $4)
RETURNING id::text, article_id::text, user_id::text, parent_id::text, body, created_at
`
	var c domain.Comment
	if err := r.pool.QueryRow(ctx, q, in.ArticleID, in.UserID, in.ParentID, in.Body).Scan(
		&c.ID, &c.ArticleID, &c.UserID, &c.ParentID, &c.Body, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) DeleteComment(ctx context.Context, commentID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

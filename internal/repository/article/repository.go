package article

import (
	"context"

	"storefront/internal/domain"
)

type CreateArticleInput struct {
	Title string
	Slug  string
	Body  string
}

type CreateCommentInput struct {
	ArticleID string
	UserID    string
	ParentID  *string
	Body      string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error)
	// CommentsByArticle returns top-level comments with their replies
	// nested, oldest first.
	CommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	GetComment(ctx context.Context, commentID string) (*domain.Comment, error)
	CreateComment(ctx context.Context, in CreateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

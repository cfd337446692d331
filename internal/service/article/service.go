package article

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
	articlerepo "storefront/internal/repository/article"
)

type Service struct {
	repo articleRepo
}

type articleRepo interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, in articlerepo.CreateArticleInput) (*domain.Article, error)
	CommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	GetComment(ctx context.Context, commentID string) (*domain.Comment, error)
	CreateComment(ctx context.Context, in articlerepo.CreateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

func New(repo articlerepo.Repository) *Service {
	return &Service{repo: repo}
}

// ArticleView is an article with its comment thread attached.
type ArticleView struct {
	Article  domain.Article   `json:"article"`
	Comments []domain.Comment `json:"comments"`
}

func (s *Service) List(ctx context.Context) ([]domain.Article, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, slug string) (*ArticleView, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.CommentsByArticle(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return &ArticleView{Article: *a, Comments: comments}, nil
}

// Create publishes an article; admin only.
func (s *Service) Create(ctx context.Context, actor domain.User, title, slug, body string) (*domain.Article, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	if title == "" || slug == "" {
		return nil, fmt.Errorf("%w: title and slug required", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, articlerepo.CreateArticleInput{Title: title, Slug: slug, Body: body})
}

// AddComment attaches a comment to the article named by slug. Threads
// are one level deep: replying to a reply attaches to that reply's
// parent instead.
func (s *Service) AddComment(ctx context.Context, userID, slug string, parentID *string, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment text required", domain.ErrInvalidInput)
	}

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.repo.GetComment(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ArticleID != a.ID {
			return nil, fmt.Errorf("%w: parent comment belongs to another article", domain.ErrInvalidInput)
		}
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	return s.repo.CreateComment(ctx, articlerepo.CreateCommentInput{
		ArticleID: a.ID,
		UserID:    userID,
		ParentID:  parentID,
		Body:      body,
	})
}

// DeleteComment removes a comment (and, by cascade, its replies);
// admin only.
func (s *Service) DeleteComment(ctx context.Context, actor domain.User, commentID string) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	return s.repo.DeleteComment(ctx, commentID)
}

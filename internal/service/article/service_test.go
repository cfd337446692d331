package article

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	articlerepo "storefront/internal/repository/article"
)

type stubRepo struct {
	articles map[string]*domain.Article
	comments map[string]*domain.Comment
	added    []articlerepo.CreateCommentInput
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		articles: map[string]*domain.Article{},
		comments: map[string]*domain.Comment{},
	}
}

func (s *stubRepo) List(context.Context) ([]domain.Article, error) { return nil, nil }

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*domain.Article, error) {
	a, ok := s.articles[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *stubRepo) Create(_ context.Context, in articlerepo.CreateArticleInput) (*domain.Article, error) {
	a := &domain.Article{ID: "a-" + in.Slug, Title: in.Title, Slug: in.Slug, Body: in.Body}
	s.articles[in.Slug] = a
	return a, nil
}

func (s *stubRepo) CommentsByArticle(context.Context, string) ([]domain.Comment, error) {
	return nil, nil
}

func (s *stubRepo) GetComment(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) CreateComment(_ context.Context, in articlerepo.CreateCommentInput) (*domain.Comment, error) {
	s.added = append(s.added, in)
	return &domain.Comment{ID: "c-new", ArticleID: in.ArticleID, UserID: in.UserID, ParentID: in.ParentID, Body: in.Body}, nil
}

func (s *stubRepo) DeleteComment(context.Context, string) error { return nil }

func TestCreateRequiresAdmin(t *testing.T) {
	svc := &Service{repo: newStubRepo()}
	_, err := svc.Create(context.Background(), domain.User{ID: "u1"}, "Title", "title", "body")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateBlankSlug(t *testing.T) {
	svc := &Service{repo: newStubRepo()}
	admin := domain.User{ID: "a1", IsAdmin: true}
	if _, err := svc.Create(context.Background(), admin, "Title", "  ", "body"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddCommentBlankBody(t *testing.T) {
	repo := newStubRepo()
	repo.articles["news"] = &domain.Article{ID: "a1", Slug: "news"}
	svc := &Service{repo: repo}

	_, err := svc.AddComment(context.Background(), "u1", "news", nil, "   ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.added) != 0 {
		t.Fatal("no comment should be written")
	}
}

func TestAddCommentUnknownArticle(t *testing.T) {
	svc := &Service{repo: newStubRepo()}
	if _, err := svc.AddComment(context.Background(), "u1", "missing", nil, "hi"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddCommentParentFromAnotherArticle(t *testing.T) {
	repo := newStubRepo()
	repo.articles["news"] = &domain.Article{ID: "a1", Slug: "news"}
	repo.comments["c1"] = &domain.Comment{ID: "c1", ArticleID: "a2"}
	svc := &Service{repo: repo}

	parent := "c1"
	if _, err := svc.AddComment(context.Background(), "u1", "news", &parent, "hi"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddCommentReplyToReplyFlattens(t *testing.T) {
	repo := newStubRepo()
	repo.articles["news"] = &domain.Article{ID: "a1", Slug: "news"}
	top := "c-top"
	repo.comments["c-top"] = &domain.Comment{ID: "c-top", ArticleID: "a1"}
	repo.comments["c-reply"] = &domain.Comment{ID: "c-reply", ArticleID: "a1", ParentID: &top}
	svc := &Service{repo: repo}

	reply := "c-reply"
	c, err := svc.AddComment(context.Background(), "u1", "news", &reply, "me too")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ParentID == nil || *c.ParentID != "c-top" {
		t.Fatalf("expected reply re-parented to c-top, got %v", c.ParentID)
	}
}

func TestAddCommentTopLevel(t *testing.T) {
	repo := newStubRepo()
	repo.articles["news"] = &domain.Article{ID: "a1", Slug: "news"}
	svc := &Service{repo: repo}

	c, err := svc.AddComment(context.Background(), "u1", "news", nil, "  first  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ParentID != nil {
		t.Fatalf("expected top-level comment, got parent %v", c.ParentID)
	}
	if len(repo.added) != 1 || repo.added[0].Body != "first" {
		t.Fatalf("expected trimmed body, got %+v", repo.added)
	}
}

func TestDeleteCommentRequiresAdmin(t *testing.T) {
	svc := &Service{repo: newStubRepo()}
	if err := svc.DeleteComment(context.Background(), domain.User{ID: "u1"}, "c1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteComment(context.Background(), domain.User{ID: "a1", IsAdmin: true}, "c1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

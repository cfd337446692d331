package reaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	reactionrepo "storefront/internal/repository/reaction"
)

type mockRepo struct {
	upsertFunc func(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error)
	deleteFunc func(ctx context.Context, userID, targetKind, targetID string) error
	getFunc    func(ctx context.Context, userID, targetKind, targetID string) (*domain.Reaction, error)
	counts     reactionrepo.Counts
	upserts    int
}

func (m *mockRepo) Upsert(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error) {
	m.upserts++
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, targetKind, targetID, polarity)
	}
	return &domain.Reaction{UserID: userID, TargetKind: targetKind, TargetID: targetID, Polarity: polarity}, nil
}

func (m *mockRepo) Delete(ctx context.Context, userID, targetKind, targetID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, targetKind, targetID)
	}
	return nil
}

func (m *mockRepo) Get(ctx context.Context, userID, targetKind, targetID string) (*domain.Reaction, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, targetKind, targetID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockRepo) CountsForTarget(context.Context, string, string) (reactionrepo.Counts, error) {
	return m.counts, nil
}

func TestReactValidation(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		polarity string
		wantErr  bool
	}{
		{name: "article_like", kind: domain.TargetArticle, polarity: domain.PolarityLike},
		{name: "comment_dislike", kind: domain.TargetComment, polarity: domain.PolarityDislike},
		{name: "review_like", kind: domain.TargetReview, polarity: domain.PolarityLike},
		{name: "unknown_kind", kind: "product", polarity: domain.PolarityLike, wantErr: true},
		{name: "unknown_polarity", kind: domain.TargetArticle, polarity: "meh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := &Service{repo: repo}
			got, err := svc.React(context.Background(), "u1", tt.kind, "t1", tt.polarity)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.polarity, got.Polarity)
		})
	}
}

func TestReactOverwritesPolarity(t *testing.T) {
	var last string
	repo := &mockRepo{
		upsertFunc: func(_ context.Context, userID, kind, id, polarity string) (*domain.Reaction, error) {
			last = polarity
			return &domain.Reaction{UserID: userID, TargetKind: kind, TargetID: id, Polarity: polarity}, nil
		},
	}
	svc := &Service{repo: repo}

	_, err := svc.React(context.Background(), "u1", domain.TargetReview, "t1", domain.PolarityLike)
	require.NoError(t, err)
	_, err = svc.React(context.Background(), "u1", domain.TargetReview, "t1", domain.PolarityDislike)
	require.NoError(t, err)

	assert.Equal(t, domain.PolarityDislike, last)
	assert.Equal(t, 2, repo.upserts, "both calls go through the upsert path")
}

func TestUnreactMissingRowIsNoop(t *testing.T) {
	repo := &mockRepo{
		deleteFunc: func(context.Context, string, string, string) error {
			return domain.ErrNotFound
		},
	}
	svc := &Service{repo: repo}
	assert.NoError(t, svc.Unreact(context.Background(), "u1", domain.TargetComment, "t1"))
}

func TestUnreactUnknownKind(t *testing.T) {
	svc := &Service{repo: &mockRepo{}}
	err := svc.Unreact(context.Background(), "u1", "product", "t1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummaryFor(t *testing.T) {
	repo := &mockRepo{
		counts: reactionrepo.Counts{Likes: 3, Dislikes: 1},
		getFunc: func(_ context.Context, userID, kind, id string) (*domain.Reaction, error) {
			if userID == "u1" {
				return &domain.Reaction{UserID: userID, TargetKind: kind, TargetID: id, Polarity: domain.PolarityLike}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := &Service{repo: repo}

	got, err := svc.SummaryFor(context.Background(), domain.TargetArticle, "t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Likes)
	assert.Equal(t, 1, got.Dislikes)
	assert.Equal(t, domain.PolarityLike, got.Viewer)

	got, err = svc.SummaryFor(context.Background(), domain.TargetArticle, "t1", "")
	require.NoError(t, err)
	assert.Empty(t, got.Viewer, "anonymous viewers carry no polarity")
}

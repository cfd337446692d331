package reaction

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	reactionrepo "storefront/internal/repository/reaction"
)

type Service struct {
	repo reactionRepo
}

type reactionRepo interface {
	Upsert(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error)
	Delete(ctx context.Context, userID, targetKind, targetID string) error
	Get(ctx context.Context, userID, targetKind, targetID string) (*domain.Reaction, error)
	CountsForTarget(ctx context.Context, targetKind, targetID string) (reactionrepo.Counts, error)
}

func New(repo reactionrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Summary is the aggregate view of one target's reactions, with the
// viewer's own polarity when they have one.
type Summary struct {
	TargetKind string `json:"targetKind"`
	TargetID   string `json:"targetId"`
	Likes      int    `json:"likes"`
	Dislikes   int    `json:"dislikes"`
	Viewer     string `json:"viewerPolarity,omitempty"`
}

// React records the user's polarity toward the target. The target is a
// weak reference and is never dereferenced here; reacting to a deleted
// target succeeds and leaves an orphaned row.
func (s *Service) React(ctx context.Context, userID, targetKind, targetID, polarity string) (*domain.Reaction, error) {
	if !domain.ValidTargetKind(targetKind) {
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidInput, targetKind)
	}
	if !domain.ValidPolarity(polarity) {
		return nil, fmt.Errorf("%w: unknown polarity %q", domain.ErrInvalidInput, polarity)
	}
	return s.repo.Upsert(ctx, userID, targetKind, targetID, polarity)
}

// Unreact removes the user's reaction. A missing row is not an error:
// toggling off twice is a no-op.
func (s *Service) Unreact(ctx context.Context, userID, targetKind, targetID string) error {
	if !domain.ValidTargetKind(targetKind) {
		return fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidInput, targetKind)
	}
	err := s.repo.Delete(ctx, userID, targetKind, targetID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// SummaryFor aggregates likes/dislikes for a target. viewerID may be
// empty for anonymous viewers.
func (s *Service) SummaryFor(ctx context.Context, targetKind, targetID, viewerID string) (*Summary, error) {
	if !domain.ValidTargetKind(targetKind) {
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidInput, targetKind)
	}
	counts, err := s.repo.CountsForTarget(ctx, targetKind, targetID)
	if err != nil {
		return nil, err
	}
	summary := &Summary{
		TargetKind: targetKind,
		TargetID:   targetID,
		Likes:      counts.Likes,
		Dislikes:   counts.Dislikes,
	}
	if viewerID != "" {
		re, err := s.repo.Get(ctx, viewerID, targetKind, targetID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if re != nil {
			summary.Viewer = re.Polarity
		}
	}
	return summary, nil
}

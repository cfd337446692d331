package reaction

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	"storefront/internal/migrate"
)

func TestPostgres_UpsertOverwritesPolarity(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	userID := seedUser(ctx, t, pool, "reader")
	targetID := uuid.NewString()
	repo := NewPostgres(pool)

	re, err := repo.Upsert(ctx, userID, domain.TargetArticle, targetID, domain.PolarityLike)
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if re.Polarity != domain.PolarityLike {
		t.Fatalf("expected like, got %q", re.Polarity)
	}

	re, err = repo.Upsert(ctx, userID, domain.TargetArticle, targetID, domain.PolarityDislike)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if re.Polarity != domain.PolarityDislike {
		t.Fatalf("expected dislike, got %q", re.Polarity)
	}

	counts, err := repo.CountsForTarget(ctx, domain.TargetArticle, targetID)
	if err != nil {
		t.Fatalf("CountsForTarget: %v", err)
	}
	if counts.Likes != 0 || counts.Dislikes != 1 {
		t.Fatalf("expected single dislike, got %+v", counts)
	}
}

func TestPostgres_CountsAreScopedPerKind(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	userID := seedUser(ctx, t, pool, "reader")
	otherID := seedUser(ctx, t, pool, "lurker")
	targetID := uuid.NewString()
	repo := NewPostgres(pool)

	// The same id may exist under different kinds; counts never mix.
	if _, err := repo.Upsert(ctx, userID, domain.TargetArticle, targetID, domain.PolarityLike); err != nil {
		t.Fatalf("Upsert article: %v", err)
	}
	if _, err := repo.Upsert(ctx, otherID, domain.TargetComment, targetID, domain.PolarityLike); err != nil {
		t.Fatalf("Upsert comment: %v", err)
	}

	counts, err := repo.CountsForTarget(ctx, domain.TargetArticle, targetID)
	if err != nil {
		t.Fatalf("CountsForTarget: %v", err)
	}
	if counts.Likes != 1 {
		t.Fatalf("expected one article like, got %+v", counts)
	}
}

func TestPostgres_DeleteMissingReaction(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	userID := seedUser(ctx, t, pool, "reader")
	targetID := uuid.NewString()
	repo := NewPostgres(pool)

	if err := repo.Delete(ctx, userID, domain.TargetReview, targetID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Upsert(ctx, userID, domain.TargetReview, targetID, domain.PolarityLike); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Delete(ctx, userID, domain.TargetReview, targetID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, userID, domain.TargetReview, targetID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE reactions, tokens, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func seedUser(ctx context.Context, t *testing.T, pool *pgxpool.Pool, username string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(ctx, `INSERT INTO users (username, password_hash) VALUES ($1, 'x') RETURNING id::text`, username).Scan(&id)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

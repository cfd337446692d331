package user

import (
	"context"

	"storefront/internal/domain"
)

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

type UpdateProfileInput struct {
	Email     *string
	Phone     *string
	AvatarURL *string
}

type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}

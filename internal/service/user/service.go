package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain"
	tokenrepo "storefront/internal/repository/token"
	userrepo "storefront/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles registration, login, and profile flows.
type Service struct {
	repo        userrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	passwordMin int
}

func New(repo userrepo.Repository, tokens tokenrepo.Repository, accessTTL time.Duration) *Service {
	if accessTTL <= 0 {
		accessTTL = 48 * time.Hour
	}
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens),
		accessTTL:   accessTTL,
		passwordMin: 8,
	}
}

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Session is a logged-in user plus their bearer token.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account and logs it in, mirroring the storefront
// flow where signup lands the user on the catalog already authenticated.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", domain.ErrInvalidInput)
	}
	if in.Password != in.Password2 {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, s.passwordMin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, userrepo.CreateUserInput{
		Username:     username,
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username taken", domain.ErrAlreadyExists)
		}
		return nil, err
	}

	return s.startSession(ctx, u)
}

// Login verifies credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	// Registration hashes the trimmed password, so comparison must
	// trim the same way.
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, u)
}

// Logout revokes the token. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.tokens.Revoke(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	if in.Email != nil {
		trimmed := strings.TrimSpace(strings.ToLower(*in.Email))
		if trimmed == "" {
			return nil, fmt.Errorf("%w: email cannot be blank", domain.ErrInvalidInput)
		}
		in.Email = &trimmed
	}
	return s.repo.UpdateProfile(ctx, userID, userrepo.UpdateProfileInput{
		Email:     in.Email,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
	})
}

func (s *Service) startSession(ctx context.Context, u *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(ctx, u.ID, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &Session{User: *u, Token: token}, nil
}

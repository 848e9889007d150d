package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/worldroam/countries-api/internal/core/domain"
	"github.com/worldroam/countries-api/internal/core/ports"
)

// AuthService implements registration, login and profile retrieval.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password, creates the account with an empty favorites
// collection and returns a freshly issued token alongside the new user.
// Email uniqueness is enforced by the repository's storage constraint.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same error so callers cannot tell which failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Profile returns the account for id.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original accounts were hashed with.
const bcryptCost = 10

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, username, password, city string) (AuthResult, error)
	Login(ctx context.Context, username, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, password, city string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	city = strings.TrimSpace(city)
	if username == "" || password == "" || city == "" {
		return AuthResult{}, ErrValidation
	}

	// If user exists, fail fast; the unique index catches the race anyway.
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	// Hashing is deliberately slow and must finish before we acknowledge.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	user := User{
		Username:     username,
		PasswordHash: string(passwordHash),
		City:         city,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, stored)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: stored, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return AuthResult{}, ErrValidation
	}

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return AuthResult{}, ErrNotFound
	}
	if !VerifyPassword(user, password) {
		return AuthResult{}, ErrCredentialMismatch
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

// VerifyPassword reports whether candidate matches the user's stored hash.
// bcrypt's comparison is constant-time; the plaintext is never reconstructed.
func VerifyPassword(user User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}

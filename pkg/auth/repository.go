package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrValidation         = errors.New("missing required fields")
	ErrCredentialMismatch = errors.New("password does not match")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, NoSQL, etc. Duplicate-username races are
// resolved by the store's own unique-index enforcement, not by locking here.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users map[string]User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]User)}
}

func (r *fakeRepo) Create(ctx context.Context, user User) (User, error) {
	if _, ok := r.users[user.Username]; ok {
		return User{}, ErrUserAlreadyExists
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Username] = user
	return user, nil
}

func (r *fakeRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	user, ok := r.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

type staticTokens struct{ token string }

func (s staticTokens) Generate(ctx context.Context, user User) (string, error) {
	return s.token, nil
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		city     string
		wantErr  error
	}{
		{name: "ok", username: "alice", password: "p@ss", city: "Pune"},
		{name: "missing username", username: "", password: "p@ss", city: "Pune", wantErr: ErrValidation},
		{name: "missing password", username: "alice", password: "", city: "Pune", wantErr: ErrValidation},
		{name: "missing city", username: "alice", password: "p@ss", city: "  ", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewAuthService(newFakeRepo(), staticTokens{token: "tok"})

			result, err := svc.Register(context.Background(), tt.username, tt.password, tt.city)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, result.User.Username)
			assert.Equal(t, tt.city, result.User.City)
			assert.NotEmpty(t, result.Token)
			assert.False(t, result.User.ID.IsZero())
			assert.False(t, result.User.CreatedAt.IsZero())

			// Plaintext must never be stored; the hash must verify.
			assert.NotEqual(t, tt.password, result.User.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte(tt.password)))
			assert.True(t, VerifyPassword(result.User, tt.password))
			assert.False(t, VerifyPassword(result.User, tt.password+"x"))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})

	first, err := svc.Register(context.Background(), "alice", "p@ss", "Pune")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other", "Mumbai")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	// First record must be untouched.
	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.User.PasswordHash, stored.PasswordHash)
	assert.Equal(t, "Pune", stored.City)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})
	_, err := svc.Register(context.Background(), "alice", "p@ss", "Pune")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "alice", password: "p@ss"},
		{name: "wrong password", username: "alice", password: "wrong", wantErr: ErrCredentialMismatch},
		{name: "unknown user", username: "bob", password: "p@ss", wantErr: ErrNotFound},
		{name: "empty fields", username: "", password: "", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, result.Token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", result.User.Username)
			assert.NotEmpty(t, result.Token)
		})
	}
}

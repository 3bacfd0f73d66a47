package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skycast-io/skycast/pkg/auth"
)

func testUser() auth.User {
	return auth.User{
		ID:           primitive.NewObjectID(),
		Username:     "alice",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		City:         "Pune",
	}
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", time.Hour)
	user := testUser()

	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := gen.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.PasswordHash, claims.Password)
	assert.Equal(t, user.City, claims.City)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_ShortExpiryStillValid(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", time.Second)
	tok, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Parse(tok)
	assert.NoError(t, err)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", -time.Second)
	tok, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Parse(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator("right-secret", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = NewGenerator("wrong-secret", time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator("k", time.Hour).Parse("not.a.jwt")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

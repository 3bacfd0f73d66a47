package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/skycast-io/skycast/pkg/auth"
)

// Verification errors surfaced to the middleware/handlers.
var (
	ErrTokenMalformed = errors.New("token was not authorized")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("invalid token")
)

// Claims carries the identity payload embedded in issued tokens. The payload
// mirrors the stored user document, including the bcrypt hash; a stricter
// claim set only needs a change here, not in the verification path.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Password string `json:"password"`
	City     string `json:"city"`
	UserID   string `json:"_id"`
}

// Generator issues HS256-signed bearer tokens. The secret is injected at
// construction; nothing here reads ambient configuration.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured token lifetime.
func (g *Generator) TTL() time.Duration { return g.ttl }

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Username: user.Username,
		Password: user.PasswordHash,
		City:     user.City,
		UserID:   user.ID.Hex(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
func (g *Generator) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

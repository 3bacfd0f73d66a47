package revocation

import (
	"context"
	"time"
)

// Denylist records revoked token ids until their natural expiry. Verification
// consults it so a logged-out token stops working before its exp elapses.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Noop keeps the stateless behavior: logout only clears the client cookie
// and a bearer token stays valid until it expires.
type Noop struct{}

func (Noop) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error { return nil }

func (Noop) IsRevoked(ctx context.Context, tokenID string) (bool, error) { return false, nil }

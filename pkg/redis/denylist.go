package redis

import (
	"context"
	"time"
)

const denylistPrefix = "denylist:"

// TokenDenylist tracks revoked refresh-token JTIs. Entries expire with
// the token they block, so the set never needs sweeping.
type TokenDenylist struct{}

var (
	setDenyValue    = Set
	existsDenyValue = Exists
)

// NewTokenDenylist creates a new denylist over the shared client
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{}
}

// Revoke marks a JTI as unusable for the remaining token lifetime.
// A non-positive ttl means the token already expired; nothing to store.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return setDenyValue(ctx, denylistPrefix+jti, "1", ttl)
}

// IsRevoked reports whether a JTI has been denylisted
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return existsDenyValue(ctx, denylistPrefix+jti)
}

package service

import "time"

// TokenInfo is the subset of bearer token claims the console displays.
// The token is never verified locally; the inventory API is the authority
// and these values are cosmetic.
type TokenInfo struct {
	Username  string    // Subject claim, shown in the navbar.
	UserID    int64     // The userId claim, zero when absent.
	ExpiresAt time.Time // Expiry claim, zero when absent.
}

// Expired reports whether the token is past its expiry claim. Tokens
// without an expiry never expire locally; the upstream still rejects them
// with 401 when it disagrees.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// TokenService inspects bearer tokens for display purposes.
type TokenService interface {
	// Inspect extracts display claims from a token without verifying it.
	Inspect(token string) (*TokenInfo, error)
}

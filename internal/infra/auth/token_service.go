// Package auth provides bearer token inspection for display purposes.
package auth

import (
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type tokenService struct {
	parser *jwt.Parser
}

// NewTokenService is the constructor for the JWT-based TokenService.
func NewTokenService() service.TokenService {
	return &tokenService{parser: jwt.NewParser()}
}

// Inspect extracts display claims from a token without verifying it. The
// inventory API holds the signing key and is the only verifier; the console
// only surfaces who is logged in and until when.
func (s *tokenService) Inspect(token string) (*service.TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	info := &service.TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Username = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	if userID, ok := claims["userId"].(float64); ok {
		info.UserID = int64(userID)
	}

	return info, nil
}

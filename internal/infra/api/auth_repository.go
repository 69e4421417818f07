package api

import (
	"context"
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// authRepository exchanges credentials for a bearer token.
type authRepository struct {
	client *Client
}

// NewAuthRepository is the constructor for the API-backed AuthRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// Login authenticates against the inventory API. A 401 here means bad
// credentials rather than an expired session, so it is translated before it
// can trip the global logout handling.
func (r *authRepository) Login(ctx context.Context, creds *repository.Credentials) (*repository.LoginResult, error) {
	var result repository.LoginResult
	if err := r.client.do(ctx, http.MethodPost, "/api/v1/auth/login", creds, &result); err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "login")
	}

	return &result, nil
}

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sessionContext(token string, role entity.Role) context.Context {
	return entity.WithSession(context.Background(), &entity.Session{Token: token, Role: role})
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	repo := NewShopRepository(client)
	_, err := repo.Mine(sessionContext("tok-123", entity.RoleShop))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoSessionSendsNoAuthorization(t *testing.T) {
	var gotAuth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"token":"t","role":"SHOP","userId":1,"username":"alice"}`))
	}))

	repo := NewAuthRepository(client)
	_, err := repo.Login(context.Background(), &repository.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedMapsToSessionExpired(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"token expired"}`, http.StatusUnauthorized)
	}))

	repo := NewShopRepository(client)
	_, err := repo.Mine(sessionContext("stale", entity.RoleShop))
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthRepository_UnauthorizedMeansBadCredentials(t *testing.T) {
	// A 401 during login is a credentials rejection, not an expired session;
	// it must not trip the global logout handling.
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad credentials"}`, http.StatusUnauthorized)
	}))

	repo := NewAuthRepository(client)
	_, err := repo.Login(context.Background(), &repository.Credentials{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestClient_RejectionSurfacesServerMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"shop name already taken"}`))
	}))

	repo := NewShopRepository(client)
	_, err := repo.Create(sessionContext("tok", entity.RoleShop), &repository.ShopRequest{Name: "Dup"})
	require.ErrorIs(t, err, domainerrors.ErrUpstreamRejected)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "shop name already taken", appErr.Details())
}

func TestClient_NotFoundMapsToShopSentinel(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"no such shop"}`, http.StatusNotFound)
	}))

	repo := NewShopRepository(client)
	_, err := repo.Find(sessionContext("tok", entity.RoleAdmin), 42)
	assert.ErrorIs(t, err, repository.ErrShopNotFound)
}

func TestClient_ServerErrorMapsToUnavailable(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))

	repo := NewShopRepository(client)
	_, err := repo.Mine(sessionContext("tok", entity.RoleShop))
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestClient_TransportFailureMapsToUnavailable(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1" // nothing listens here
	cfg.API.Timeout = time.Second
	client := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo := NewShopRepository(client)
	_, err := repo.Mine(sessionContext("tok", entity.RoleShop))
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestShopRepository_DecodesCoordinates(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/shops/mine", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Corner Espresso","latitude":25.033,"longitude":121.5654,"deliveryOption":"IN_HOUSE_DRIVER"},
			{"id":2,"name":"No Location Yet","latitude":null,"longitude":null,"deliveryOption":"NO_DELIVERY"}
		]`))
	}))

	repo := NewShopRepository(client)
	shops, err := repo.Mine(sessionContext("tok", entity.RoleShop))
	require.NoError(t, err)
	require.Len(t, shops, 2)

	lat, ok := shops[0].Latitude()
	require.True(t, ok)
	assert.InDelta(t, 25.033, lat, 1e-9)
	assert.Equal(t, entity.DeliveryInHouse, shops[0].DeliveryOption)

	_, ok = shops[1].Latitude()
	assert.False(t, ok)
}

func TestShopRepository_BulkDeleteSendsIDList(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		payload, _ := io.ReadAll(r.Body)
		gotBody = string(payload)
		w.WriteHeader(http.StatusNoContent)
	}))

	repo := NewShopRepository(client)
	require.NoError(t, repo.BulkDelete(sessionContext("tok", entity.RoleAdmin), []int64{7, 9}))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/shops/bulk", gotPath)
	assert.JSONEq(t, `[7,9]`, gotBody)
}

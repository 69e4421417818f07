package geo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocator(t *testing.T, handler http.Handler) service.Locator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Geo.Endpoint = server.URL
	cfg.Geo.Timeout = 2 * time.Second

	return NewLocator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLocator_Success(t *testing.T) {
	locator := testLocator(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":25.033,"lon":121.5654}`))
	}))

	point, err := locator.Locate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.033, point.Lat(), 1e-9)
	assert.InDelta(t, 121.5654, point.Lon(), 1e-9)
}

func TestLocator_ProviderFailure(t *testing.T) {
	locator := testLocator(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))

	_, err := locator.Locate(context.Background())
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
}

func TestLocator_HTTPErrorStatus(t *testing.T) {
	locator := testLocator(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := locator.Locate(context.Background())
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
}

func TestLocator_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Geo.Endpoint = server.URL
	cfg.Geo.Timeout = 20 * time.Millisecond
	locator := NewLocator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := locator.Locate(context.Background())
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
}

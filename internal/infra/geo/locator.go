// Package geo implements one-shot location capture through an external
// IP-geolocation endpoint.
package geo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type httpLocator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	logger   *slog.Logger
}

// NewLocator is the constructor for the HTTP-backed Locator.
func NewLocator(cfg *config.Config, logger *slog.Logger) service.Locator {
	return &httpLocator{
		endpoint: cfg.Geo.Endpoint,
		timeout:  cfg.Geo.Timeout,
		client:   &http.Client{Timeout: cfg.Geo.Timeout},
		logger:   logger,
	}
}

// locateResponse covers the common ip-api style payload.
type locateResponse struct {
	Status  string  `json:"status"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Message string  `json:"message"`
}

// Locate performs a single lookup bound by the configured timeout. There is
// no retry and no fallback; the caller decides whether to try again.
func (l *httpLocator) Locate(ctx context.Context) (orb.Point, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "create locate request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn("location capture failed", slog.Any("error", err))

		return orb.Point{}, errors.Wrap(service.ErrLocationUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Wrapf(service.ErrLocationUnavailable, "status %d", resp.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return orb.Point{}, errors.Wrap(service.ErrLocationUnavailable, "decode response")
	}
	if body.Status != "" && body.Status != "success" {
		return orb.Point{}, errors.Wrapf(service.ErrLocationUnavailable, "provider: %s", body.Message)
	}

	return orb.Point{body.Lon, body.Lat}, nil
}

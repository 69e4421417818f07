// Package api implements the domain repositories on top of the remote
// inventory service's REST API. This is the only place the console performs
// network I/O for entity data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// Client is the shared HTTP client for the inventory API. It attaches the
// session bearer token to every request and folds responses into the
// application error taxonomy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the API client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// errorBody is the upstream's error envelope; the message is surfaced to the
// operator when present.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body. 204 responses are accepted without
// decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session := entity.SessionFromContext(ctx); session.IsValid() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("inventory API unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, method, path); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

// checkStatus maps non-2xx responses onto the error taxonomy. 401 is special:
// it means the session is dead everywhere, and the delivery layer reacts by
// clearing credentials and redirecting to login.
func (c *Client) checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	serverMsg := decodeErrorMessage(resp.Body)

	c.logger.Debug("inventory API error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("serverMessage", serverMsg),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domainerrors.ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(errNotFound, "%s %s", method, path)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if serverMsg != "" {
			return domainerrors.ErrUpstreamRejected.WithDetails(serverMsg)
		}

		return domainerrors.ErrUpstreamRejected
	default:
		return domainerrors.ErrUpstreamUnavailable.WithDetails(serverMsg)
	}
}

// errNotFound is translated by each repository into its own sentinel.
var errNotFound = errors.New("not found")

func decodeErrorMessage(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}

	return body.Message
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/internal/delivery/http/render"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRenderingEcho builds an echo instance with the real renderer and
// validator, for handler tests that render templates.
func newRenderingEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()

	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer

	return e
}

// withShopSession attaches an owner session so capability-gated sections
// render.
func withShopSession(c echo.Context) {
	ctx := entity.WithSession(c.Request().Context(), &entity.Session{Token: "tok", Role: entity.RoleShop})
	c.SetRequest(c.Request().WithContext(ctx))
}

func postForm(e *echo.Echo, target string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

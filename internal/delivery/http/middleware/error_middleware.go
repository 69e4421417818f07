package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/session"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns errors bubbling out of the handlers into rendered
// error pages. A session-expired error is special: wherever it surfaces, the
// stored credential pair is cleared and the browser is sent back to the
// login view.
type ErrorMiddleware struct {
	logger *slog.Logger
	store  session.Store
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, store session.Store) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		store:  store,
	}
}

// errorPage is the data handed to the error template.
type errorPage struct {
	Code      int
	Message   string
	Details   string
	RequestID string
}

// HandleHTTPError handles errors as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Global 401 rule: clear the stored pair and return to login.
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		m.store.Clear(c)
		if redirectErr := c.Redirect(http.StatusSeeOther, "/login?expired=1"); redirectErr != nil {
			m.logger.Error("Failed to redirect expired session", slog.Any("error", redirectErr))
		}

		return
	}

	page := errorPage{
		Code:      http.StatusInternalServerError,
		Message:   "Internal server error",
		RequestID: deliverycontext.GetRequestID(c),
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		page.Code = appErr.HTTPCode()
		page.Message = appErr.Message()
		page.Details = appErr.Details()
	case errors.As(err, &httpErr):
		page.Code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			page.Message = msg
		}
	default:
		m.logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if renderErr := c.Render(page.Code, "error.html", page); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(page.Code, page.Message)
	}
}

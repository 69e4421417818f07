package middleware

import (
	"net/http"

	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware guards routes behind a stored session. The console never
// verifies the token itself; it attaches the pair to the request context and
// lets the inventory API answer 401 for anything stale.
type SessionMiddleware struct {
	store session.Store
}

// NewSessionMiddleware creates a new session guard.
func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{
		store: store,
	}
}

// Require redirects to the login view when no usable credential pair is
// stored, and otherwise threads the session through the request context.
func (m *SessionMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := m.store.Load(c)
		if sess == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		ctx := entity.WithSession(c.Request().Context(), sess)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin rejects sessions without the administrator role. It runs
// after Require, so the session is already on the context.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := entity.SessionFromContext(c.Request().Context())
		if !sess.IsAdmin() {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

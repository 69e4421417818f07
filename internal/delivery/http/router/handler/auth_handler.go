package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the login view and the session endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	store  session.Store
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, store session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		store:  store,
		logger: logger,
	}
}

// loginPage is the data for the login template.
type loginPage struct {
	page
	Expired      bool
	FormUsername string
}

// ShowLogin renders the login form. A signed-in user is sent straight to
// their landing view.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if sess := h.store.Load(c); sess != nil {
		return c.Redirect(http.StatusSeeOther, landingPath(sess))
	}

	return c.Render(http.StatusOK, "login.html", loginPage{
		page:    page{Title: "Sign in"},
		Expired: c.QueryParam("expired") != "",
	})
}

// Login exchanges the submitted credentials for a session pair and stores it.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return h.renderRejected(c, input.Username, "Username and password are required.")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return h.renderRejected(c, input.Username, "Invalid username or password.")
		}

		return errors.WithStack(err)
	}

	h.store.Save(c, &output.Session)
	h.logger.Info("Signed in", slog.String("username", output.Username), slog.String("role", output.Session.Role.String()))

	return c.Redirect(http.StatusSeeOther, landingPath(&output.Session))
}

// Logout clears the stored pair. Logout is purely local; the token simply
// stops being sent.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Clear(c)

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) renderRejected(c echo.Context, username, message string) error {
	data := loginPage{
		page:         page{Title: "Sign in", Error: message},
		FormUsername: username,
	}

	return c.Render(http.StatusUnauthorized, "login.html", data)
}

// landingPath returns the view a session lands on after login.
func landingPath(sess *entity.Session) string {
	if sess.IsAdmin() {
		return "/admin"
	}

	return "/"
}

// Package session persists the credential pair between requests. The console
// keeps no server-side session state; the token and role live in a pair of
// browser cookies and the inventory API remains the authority on both.
package session

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	tokenCookie = "token"
	roleCookie  = "role"
)

// Store reads and writes the session credential pair for a request.
type Store interface {
	// Load returns the stored session, or nil when no usable pair exists.
	Load(c echo.Context) *entity.Session

	// Save stores the session on the response.
	Save(c echo.Context, sess *entity.Session)

	// Clear removes the stored pair on the response.
	Clear(c echo.Context)
}

// cookieStore keeps the pair in two HttpOnly cookies named after the
// configured prefix.
type cookieStore struct {
	prefix string
	secure bool
	tokens service.TokenService
}

// NewCookieStore creates the cookie-backed store from configuration.
func NewCookieStore(cfg *config.Config, tokens service.TokenService) Store {
	return &cookieStore{
		prefix: cfg.Session.CookiePrefix,
		secure: cfg.Session.Secure,
		tokens: tokens,
	}
}

func (s *cookieStore) name(suffix string) string {
	return s.prefix + "_" + suffix
}

func (s *cookieStore) Load(c echo.Context) *entity.Session {
	token, err := c.Cookie(s.name(tokenCookie))
	if err != nil || token.Value == "" {
		return nil
	}

	role, err := c.Cookie(s.name(roleCookie))
	if err != nil {
		return nil
	}

	sess := &entity.Session{
		Token: token.Value,
		Role:  entity.Role(role.Value),
	}
	if !sess.IsValid() {
		return nil
	}

	// A locally expired token is treated as no session at all, saving the
	// round trip to the inevitable 401.
	if info, err := s.tokens.Inspect(sess.Token); err == nil && info.Expired(time.Now()) {
		s.Clear(c)

		return nil
	}

	return sess
}

func (s *cookieStore) Save(c echo.Context, sess *entity.Session) {
	s.set(c, tokenCookie, sess.Token)
	s.set(c, roleCookie, sess.Role.String())
}

func (s *cookieStore) Clear(c echo.Context) {
	s.expire(c, tokenCookie)
	s.expire(c, roleCookie)
}

func (s *cookieStore) set(c echo.Context, suffix, value string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name(suffix),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieStore) expire(c echo.Context, suffix string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name(suffix),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

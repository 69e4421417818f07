package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() Store {
	cfg := &config.Config{}
	cfg.Session.CookiePrefix = "storefront"

	return NewCookieStore(cfg, auth.NewTokenService())
}

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCookieStore_RoundTrip(t *testing.T) {
	e := echo.New()
	store := testStore()

	c, rec := newContext(e, nil)
	store.Save(c, &entity.Session{Token: "tok-123", Role: entity.RoleShop})

	written := rec.Result().Cookies()
	require.Len(t, written, 2)
	for _, cookie := range written {
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
	}

	c, _ = newContext(e, written)
	sess := store.Load(c)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, entity.RoleShop, sess.Role)
}

func TestCookieStore_LoadMissing(t *testing.T) {
	e := echo.New()
	store := testStore()

	c, _ := newContext(e, nil)
	assert.Nil(t, store.Load(c))
}

func TestCookieStore_LoadRejectsPartialPair(t *testing.T) {
	e := echo.New()
	store := testStore()

	c, _ := newContext(e, []*http.Cookie{{Name: "storefront_token", Value: "tok"}})
	assert.Nil(t, store.Load(c))
}

func TestCookieStore_LoadRejectsUnknownRole(t *testing.T) {
	e := echo.New()
	store := testStore()

	c, _ := newContext(e, []*http.Cookie{
		{Name: "storefront_token", Value: "tok"},
		{Name: "storefront_role", Value: "SUPERUSER"},
	})
	assert.Nil(t, store.Load(c))
}

func TestCookieStore_LoadRejectsExpiredToken(t *testing.T) {
	e := echo.New()
	store := testStore()

	claims := jwt.MapClaims{
		"sub": "owner@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	c, rec := newContext(e, []*http.Cookie{
		{Name: "storefront_token", Value: token},
		{Name: "storefront_role", Value: entity.RoleShop.String()},
	})
	assert.Nil(t, store.Load(c))

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 2)
	for _, cookie := range cleared {
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestCookieStore_Clear(t *testing.T) {
	e := echo.New()
	store := testStore()

	c, rec := newContext(e, nil)
	store.Clear(c)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 2)
	for _, cookie := range cleared {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

// Package handler contains the HTTP handlers for the console views.
package handler

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// page carries the fields every view shares: the navbar identity, the
// resolved capability set, and the banner slots.
type page struct {
	Title    string
	Username string
	Caps     entity.Capabilities
	Query    string
	Error    string
	Notice   string
}

// newPage builds the shared page fields from the request. The username comes
// from an unverified inspection of the stored token; it is display-only.
func newPage(c echo.Context, title string, tokens service.TokenService) page {
	p := page{
		Title: title,
		Query: c.QueryParam("q"),
	}

	sess := entity.SessionFromContext(c.Request().Context())
	if sess == nil {
		return p
	}

	p.Caps = entity.ResolveCapabilities(sess)
	if info, err := tokens.Inspect(sess.Token); err == nil {
		p.Username = info.Username
	}

	return p
}

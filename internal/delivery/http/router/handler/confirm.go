package handler

import (
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// confirmTarget is one row of the deletion confirmation list.
type confirmTarget struct {
	ID   int64
	Name string
}

// confirmPage is the data for the confirmation template. The selected ids
// ride along as hidden fields so a failed delete keeps the selection intact.
type confirmPage struct {
	page
	Targets []confirmTarget
	Action  string
	Cancel  string
	ShopID  int64
}

// confirmed reports whether this submit already went through the
// confirmation step.
func confirmed(c echo.Context) bool {
	return c.FormValue("confirmed") != ""
}

// shopTargets resolves the selected ids against the loaded shop list.
// Stale ids that no longer resolve are dropped from the confirmation.
func shopTargets(shops []entity.Shop, ids []int64) []confirmTarget {
	targets := make([]confirmTarget, 0, len(ids))
	for _, id := range ids {
		for i := range shops {
			if shops[i].ID == id {
				targets = append(targets, confirmTarget{ID: id, Name: shops[i].Name})

				break
			}
		}
	}

	return targets
}

// productTargets resolves the selected ids against the shop's product list.
func productTargets(products []entity.Product, ids []int64) []confirmTarget {
	targets := make([]confirmTarget, 0, len(ids))
	for _, id := range ids {
		for i := range products {
			if products[i].ID == id {
				targets = append(targets, confirmTarget{ID: id, Name: products[i].Name})

				break
			}
		}
	}

	return targets
}

// renderConfirm shows the confirmation step, rejecting empty selections
// before anything reaches the upstream API.
func renderConfirm(c echo.Context, data confirmPage) error {
	if len(data.Targets) == 0 {
		return errors.WithStack(domainerrors.ErrNoSelection)
	}

	return c.Render(http.StatusOK, "confirm_delete.html", data)
}

package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the cross-tenant directory views.
type AdminHandler struct {
	shopUC usecase.ShopUsecase
	tokens service.TokenService
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(shopUC usecase.ShopUsecase, tokens service.TokenService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		shopUC: shopUC,
		tokens: tokens,
		logger: logger,
	}
}

// adminPage is the data for the directory template.
type adminPage struct {
	page
	Shops         []entity.Shop
	Dir           *usecase.Directory
	TotalShops    int
	TotalProducts int
}

// Directory renders every shop with its product summary. The query narrows
// on shop fields and product names; the totals always describe the full
// snapshot.
func (h *AdminHandler) Directory(c echo.Context) error {
	dir, err := h.shopUC.Directory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := adminPage{
		page:          newPage(c, "Shop Directory", h.tokens),
		Dir:           dir,
		TotalShops:    len(dir.Shops),
		TotalProducts: dir.TotalProducts(),
	}
	data.Shops = dir.Filter(data.Query)

	return c.Render(http.StatusOK, "admin.html", data)
}

// ShowDelete renders the cross-tenant shop selection for deletion.
func (h *AdminHandler) ShowDelete(c echo.Context) error {
	dir, err := h.shopUC.Directory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := deletePage{
		page:   newPage(c, "Delete Shops", h.tokens),
		Shops:  dir.Shops,
		Action: "/admin/shops/delete",
		Cancel: "/admin",
	}

	return c.Render(http.StatusOK, "delete_shops.html", data)
}

// Delete runs the two-step removal across tenants: an unconfirmed submit
// renders the confirmation list, the confirmed one deletes and returns to
// the directory. A failed delete keeps the selection on screen.
func (h *AdminHandler) Delete(c echo.Context) error {
	ids, err := formIDs(c)
	if err != nil {
		return errors.WithStack(err)
	}

	confirm := func() (confirmPage, error) {
		dir, err := h.shopUC.Directory(c.Request().Context())
		if err != nil {
			return confirmPage{}, errors.WithStack(err)
		}

		return confirmPage{
			page:    newPage(c, "Confirm Deletion", h.tokens),
			Targets: shopTargets(dir.Shops, ids),
			Action:  "/admin/shops/delete",
			Cancel:  "/admin/shops/delete",
		}, nil
	}

	if !confirmed(c) {
		data, err := confirm()
		if err != nil {
			return err
		}

		return renderConfirm(c, data)
	}

	if err := h.shopUC.Delete(c.Request().Context(), ids); err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return err
		}

		data, buildErr := confirm()
		if buildErr != nil || len(data.Targets) == 0 {
			return errors.WithStack(err)
		}
		data.Error = rejectionMessage(err, "Failed to delete the selected shops.")

		return renderConfirm(c, data)
	}

	h.logger.Info("Shops deleted", slog.Int("count", len(ids)))

	return c.Redirect(http.StatusSeeOther, "/admin")
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/domain/collection"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ShopHandler serves the shop views: the owner dashboard, the shop detail,
// registration and the two-step delete.
type ShopHandler struct {
	shopUC    usecase.ShopUsecase
	productUC usecase.ProductUsecase
	locator   service.Locator
	qr        service.QRCodeService
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(
	shopUC usecase.ShopUsecase,
	productUC usecase.ProductUsecase,
	locator service.Locator,
	qr service.QRCodeService,
	tokens service.TokenService,
	logger *slog.Logger,
) *ShopHandler {
	return &ShopHandler{
		shopUC:    shopUC,
		productUC: productUC,
		locator:   locator,
		qr:        qr,
		tokens:    tokens,
		logger:    logger,
	}
}

// dashboardPage is the data for the owner dashboard template.
type dashboardPage struct {
	page
	Shops []entity.Shop
}

// Dashboard renders the calling user's shops, narrowed by the free-text
// query when one is present.
func (h *ShopHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	data := dashboardPage{page: newPage(c, "My Shops", h.tokens)}

	result := collection.Load(ctx, h.shopUC.MyShops)
	switch result.Status {
	case collection.Loaded:
		data.Shops = collection.Filter(result.Data, func(s *entity.Shop) bool {
			return s.Matches(data.Query)
		})
	case collection.Failed:
		if errors.Is(result.Err, domainerrors.ErrSessionExpired) {
			return result.Err
		}
		data.Error = "Failed to load your shops. Try again in a moment."
	}

	return c.Render(http.StatusOK, "dashboard.html", data)
}

// shopPage is the data for the shop detail template.
type shopPage struct {
	page
	Shop           *entity.Shop
	Products       []entity.Product
	ProductsFailed bool
	Edit           *entity.Product
	Form           productForm
}

// loadShopPage assembles the shop detail data shared by the page view and
// the product form re-renders. The product fetch failing does not fail the
// page; the products section renders its own error state.
func loadShopPage(
	c echo.Context,
	shopUC usecase.ShopUsecase,
	productUC usecase.ProductUsecase,
	tokens service.TokenService,
	shopID int64,
) (shopPage, error) {
	ctx := c.Request().Context()
	shop, err := shopUC.Shop(ctx, shopID)
	if err != nil {
		return shopPage{}, errors.WithStack(err)
	}

	data := shopPage{
		page: newPage(c, shop.Name, tokens),
		Shop: shop,
	}

	result := collection.Load(ctx, func(ctx context.Context) ([]entity.Product, error) {
		return productUC.ListByShop(ctx, shopID)
	})
	switch result.Status {
	case collection.Loaded:
		data.Products = usecase.FilterProducts(result.Data, data.Query)
		data.Edit = findProduct(result.Data, c.QueryParam("edit"))
	case collection.Failed:
		if errors.Is(result.Err, domainerrors.ErrSessionExpired) {
			return shopPage{}, result.Err
		}
		data.ProductsFailed = true
	}

	return data, nil
}

// Show renders one shop with its product list.
func (h *ShopHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(domainerrors.ErrShopNotFound)
	}

	data, err := loadShopPage(c, h.shopUC, h.productUC, h.tokens, id)
	if err != nil {
		return err
	}
	if data.Edit != nil {
		data.Form = productFormFromEntity(data.Edit)
	}

	return c.Render(http.StatusOK, "shop.html", data)
}

// QR serves the PNG QR code linking to the shop's page.
func (h *ShopHandler) QR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(domainerrors.ErrShopNotFound)
	}

	shopURL := c.Scheme() + "://" + c.Request().Host + "/shops/" + strconv.FormatInt(id, 10)
	png, err := h.qr.GenerateShopQR(shopURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// registerForm holds the sticky registration form values.
type registerForm struct {
	Name           string                `form:"name"`
	Address        string                `form:"address"`
	Phone          string                `form:"phone"`
	OpenHours      string                `form:"openHours"`
	DeliveryOption entity.DeliveryOption `form:"deliveryOption"`
	OwnerID        string                `form:"ownerId"`
}

// registerPage is the data for the registration template.
type registerPage struct {
	page
	Options     []entity.DeliveryOption
	HasLocation bool
	Lat         string
	Lng         string
	Form        registerForm
}

// ShowRegister renders the registration form after attempting the one-shot
// location capture. Without a captured location the submit stays disabled;
// reloading the page retries the capture.
func (h *ShopHandler) ShowRegister(c echo.Context) error {
	data := registerPage{
		page:    newPage(c, "Register Shop", h.tokens),
		Options: entity.Options(),
		Form:    registerForm{DeliveryOption: entity.DeliveryNone},
	}
	h.capture(c, &data)

	return c.Render(http.StatusOK, "register_shop.html", data)
}

// Register creates the shop. The captured coordinates ride along as hidden
// fields; a submission without them is rejected locally and the form is
// re-rendered with a fresh capture attempt.
func (h *ShopHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterShopInput{
		Name:           form.Name,
		Address:        form.Address,
		Phone:          form.Phone,
		OpenHours:      form.OpenHours,
		DeliveryOption: form.DeliveryOption,
		Location:       parseLocation(c.FormValue("longitude"), c.FormValue("latitude")),
	}

	caps := entity.ResolveCapabilities(entity.SessionFromContext(c.Request().Context()))
	if caps.CanAssignOwner && form.OwnerID != "" {
		if ownerID, err := strconv.ParseInt(form.OwnerID, 10, 64); err == nil {
			input.OwnerID = &ownerID
		}
	}

	shop, err := h.shopUC.Register(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return err
		}

		data := registerPage{
			page:    newPage(c, "Register Shop", h.tokens),
			Options: entity.Options(),
			Form:    form,
		}
		h.capture(c, &data)
		data.Error = rejectionMessage(err, "Failed to register the shop.")

		return c.Render(http.StatusUnprocessableEntity, "register_shop.html", data)
	}

	h.logger.Info("Shop registered", slog.Int64("shopID", shop.ID), slog.String("name", shop.Name))

	return c.Redirect(http.StatusSeeOther, "/shops/"+strconv.FormatInt(shop.ID, 10))
}

// deletePage is the data for the shop selection template.
type deletePage struct {
	page
	Shops  []entity.Shop
	Action string
	Cancel string
}

// ShowDelete renders the owner's shop selection for deletion.
func (h *ShopHandler) ShowDelete(c echo.Context) error {
	shops, err := h.shopUC.MyShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := deletePage{
		page:   newPage(c, "Delete Shops", h.tokens),
		Shops:  shops,
		Action: "/shops/delete",
		Cancel: "/",
	}

	return c.Render(http.StatusOK, "delete_shops.html", data)
}

// Delete runs the two-step removal of the selected shops. The first submit
// renders a confirmation listing the exact targets; the confirmed submit
// deletes and returns to the dashboard. A failed delete re-renders the
// confirmation with the selection intact.
func (h *ShopHandler) Delete(c echo.Context) error {
	ids, err := formIDs(c)
	if err != nil {
		return errors.WithStack(err)
	}

	confirm := func() (confirmPage, error) {
		shops, err := h.shopUC.MyShops(c.Request().Context())
		if err != nil {
			return confirmPage{}, errors.WithStack(err)
		}

		return confirmPage{
			page:    newPage(c, "Confirm Deletion", h.tokens),
			Targets: shopTargets(shops, ids),
			Action:  "/shops/delete",
			Cancel:  "/shops/delete",
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

	return c.Redirect(http.StatusSeeOther, "/")
}

// capture runs the one-shot location capture and fills the coordinate fields.
func (h *ShopHandler) capture(c echo.Context, data *registerPage) {
	point, err := h.locator.Locate(c.Request().Context())
	if err != nil {
		h.logger.Warn("Location capture failed", slog.Any("error", err))

		return
	}

	data.HasLocation = true
	data.Lat = util.FormatCoordinate(point.Lat(), true)
	data.Lng = util.FormatCoordinate(point.Lon(), true)
}

// parseLocation rebuilds the orb point from the hidden form fields, or nil
// when either is missing or malformed.
func parseLocation(lngValue, latValue string) *orb.Point {
	if lngValue == "" || latValue == "" {
		return nil
	}

	lng, errLng := strconv.ParseFloat(lngValue, 64)
	lat, errLat := strconv.ParseFloat(latValue, 64)
	if errLng != nil || errLat != nil {
		return nil
	}

	point := orb.Point{lng, lat}

	return &point
}

// findProduct resolves the ?edit query parameter against the loaded list.
func findProduct(products []entity.Product, raw string) *entity.Product {
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}

	return nil
}

// rejectionMessage surfaces the upstream or local rejection to the form.
func rejectionMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" {
			return details
		}

		return appErr.Message()
	}

	return fallback
}

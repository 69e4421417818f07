package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the product mutations of a shop page.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	shopUC usecase.ShopUsecase
	tokens service.TokenService
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(
	uc usecase.ProductUsecase,
	shopUC usecase.ShopUsecase,
	tokens service.TokenService,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		shopUC: shopUC,
		tokens: tokens,
		logger: logger,
	}
}

// productForm keeps the raw entered values so a rejected save re-renders
// them untouched.
type productForm struct {
	Name        string
	Description string
	Category    string
	Price       string
	Stock       string
}

func productFormFromEntity(p *entity.Product) productForm {
	return productForm{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       strconv.Itoa(p.Stock),
	}
}

func productFormFromRequest(c echo.Context) productForm {
	return productForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       c.FormValue("price"),
		Stock:       c.FormValue("stock"),
	}
}

// Create adds a product to the shop in the path. Unparseable numeric form
// fields coerce to 0 and fail validation, so no create request leaves the
// console for garbage input; rejections re-render the shop page with the
// entered values intact.
func (h *ProductHandler) Create(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(domainerrors.ErrShopNotFound)
	}

	input := h.bindInput(c)
	input.ShopID = shopID
	if err := c.Validate(input); err != nil {
		return h.renderRejected(c, shopID, nil, domainerrors.ErrValidationFailed.Message())
	}

	if _, err := h.uc.Save(c.Request().Context(), input); err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return err
		}

		return h.renderRejected(c, shopID, nil, rejectionMessage(err, "Failed to save the product."))
	}

	return h.redirectToShop(c, shopID)
}

// Update saves changes to the product in the path.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(domainerrors.ErrProductSaveFailed)
	}

	input := h.bindInput(c)
	input.ID = id
	if err := c.Validate(input); err != nil {
		return h.renderRejected(c, input.ShopID, &entity.Product{ID: id}, domainerrors.ErrValidationFailed.Message())
	}

	if _, err := h.uc.Save(c.Request().Context(), input); err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return err
		}

		return h.renderRejected(c, input.ShopID, &entity.Product{ID: id}, rejectionMessage(err, "Failed to save the product."))
	}

	return h.redirectToShop(c, input.ShopID)
}

// renderRejected re-renders the shop page with the entered values and the
// rejection inline, keeping the form open for correction.
func (h *ProductHandler) renderRejected(c echo.Context, shopID int64, edit *entity.Product, message string) error {
	data, err := loadShopPage(c, h.shopUC, h.uc, h.tokens, shopID)
	if err != nil {
		return err
	}
	data.Edit = edit
	data.Form = productFormFromRequest(c)
	data.Error = message

	return c.Render(http.StatusUnprocessableEntity, "shop.html", data)
}

// Delete runs the two-step removal of the selected products. The first
// submit renders a confirmation listing the exact targets; the confirmed
// submit deletes and returns to the shop page.
func (h *ProductHandler) Delete(c echo.Context) error {
	ids, err := formIDs(c)
	if err != nil {
		return errors.WithStack(err)
	}
	shopID := int64(coerceInt(c.FormValue("shopId")))

	confirm := func() (confirmPage, error) {
		products, err := h.uc.ListByShop(c.Request().Context(), shopID)
		if err != nil {
			return confirmPage{}, errors.WithStack(err)
		}

		return confirmPage{
			page:    newPage(c, "Confirm Deletion", h.tokens),
			Targets: productTargets(products, ids),
			Action:  "/products/delete",
			Cancel:  "/shops/" + strconv.FormatInt(shopID, 10),
			ShopID:  shopID,
		}, nil
	}

	if !confirmed(c) {
		data, err := confirm()
		if err != nil {
			return err
		}

		return renderConfirm(c, data)
	}

	if err := h.uc.Delete(c.Request().Context(), ids); err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return err
		}

		data, buildErr := confirm()
		if buildErr != nil || len(data.Targets) == 0 {
			return errors.WithStack(err)
		}
		data.Error = rejectionMessage(err, "Failed to delete the selected products.")

		return renderConfirm(c, data)
	}

	return h.redirectToShop(c, shopID)
}

// bindInput reads the product form with numeric coercion.
func (h *ProductHandler) bindInput(c echo.Context) *usecase.SaveProductInput {
	return &usecase.SaveProductInput{
		ShopID:      int64(coerceInt(c.FormValue("shopId"))),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       coerceFloat(c.FormValue("price")),
		Stock:       coerceInt(c.FormValue("stock")),
	}
}

func (h *ProductHandler) redirectToShop(c echo.Context, shopID int64) error {
	return c.Redirect(http.StatusSeeOther, "/shops/"+strconv.FormatInt(shopID, 10))
}

package usecase

import (
	"context"

	"storefront/internal/domain/collection"
	"storefront/internal/domain/entity"
)

// SaveProductInput carries the product form. A zero ID means create; a
// non-zero ID updates the existing product.
type SaveProductInput struct {
	ID          int64
	ShopID      int64
	Name        string  `validate:"required"`
	Description string
	Price       float64 `validate:"gt=0"`
	Stock       int     `validate:"gte=0"`
	Category    string
}

// FilterProducts returns the products matching the query on name,
// description or category, preserving fetch order.
func FilterProducts(products []entity.Product, query string) []entity.Product {
	return collection.Filter(products, func(p *entity.Product) bool {
		return p.Matches(query)
	})
}

// ProductUsecase covers the product views of a shop.
type ProductUsecase interface {
	// ListByShop retrieves the products of a shop.
	ListByShop(ctx context.Context, shopID int64) ([]entity.Product, error)

	// Save creates or updates a product depending on the bound ID.
	Save(ctx context.Context, input *SaveProductInput) (*entity.Product, error)

	// Delete removes the selected products: single-item endpoint for one id,
	// bulk endpoint for several, never both.
	Delete(ctx context.Context, ids []int64) error
}

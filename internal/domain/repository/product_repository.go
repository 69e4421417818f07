package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when the upstream answers 404 for a product.
var ErrProductNotFound = errors.New("product not found")

// ProductRequest is the request-shaped structure for creating or updating a
// product. No ID and no shop reference; both travel in the URL.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category,omitempty"`
}

// ProductRepository defines the product operations of the inventory API.
type ProductRepository interface {
	// ListByShop retrieves all products belonging to a shop.
	ListByShop(ctx context.Context, shopID int64) ([]entity.Product, error)

	// Create adds a product to a shop and returns the created entity.
	Create(ctx context.Context, shopID int64, req *ProductRequest) (*entity.Product, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, id int64, req *ProductRequest) (*entity.Product, error)

	// Delete removes a single product by its ID.
	Delete(ctx context.Context, id int64) error

	// BulkDelete removes multiple products in one call.
	BulkDelete(ctx context.Context, ids []int64) error
}

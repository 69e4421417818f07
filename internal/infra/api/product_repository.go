package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// productRepository talks to the product endpoints of the inventory API.
type productRepository struct {
	client *Client
}

// NewProductRepository is the constructor for the API-backed ProductRepository.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

type productDTO struct {
	ID          int64   `json:"id"`
	ShopID      int64   `json:"shopId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

func (d *productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:          d.ID,
		ShopID:      d.ShopID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		Category:    d.Category,
	}
}

// ListByShop retrieves all products belonging to a shop.
func (r *productRepository) ListByShop(ctx context.Context, shopID int64) ([]entity.Product, error) {
	var dtos []productDTO
	path := fmt.Sprintf("/api/v1/shops/%d/products", shopID)
	if err := r.client.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]entity.Product, 0, len(dtos))
	for i := range dtos {
		products = append(products, dtos[i].toEntity())
	}

	return products, nil
}

// Create adds a product to a shop and returns the created entity.
func (r *productRepository) Create(ctx context.Context, shopID int64, req *repository.ProductRequest) (*entity.Product, error) {
	var dto productDTO
	path := fmt.Sprintf("/api/v1/shops/%d/products", shopID)
	if err := r.client.do(ctx, http.MethodPost, path, req, &dto); err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	product := dto.toEntity()

	return &product, nil
}

// Update replaces the mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, id int64, req *repository.ProductRequest) (*entity.Product, error) {
	var dto productDTO
	path := fmt.Sprintf("/api/v1/products/%d", id)
	if err := r.client.do(ctx, http.MethodPut, path, req, &dto); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "update product")
	}

	product := dto.toEntity()

	return &product, nil
}

// Delete removes a single product by its ID.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", id), nil, nil); err != nil {
		if errors.Is(err, errNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "delete product")
	}

	return nil
}

// BulkDelete removes multiple products in one call.
func (r *productRepository) BulkDelete(ctx context.Context, ids []int64) error {
	if err := r.client.do(ctx, http.MethodDelete, "/api/v1/products/bulk", ids, nil); err != nil {
		return errors.Wrap(err, "bulk delete products")
	}

	return nil
}

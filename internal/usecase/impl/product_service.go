package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListByShop retrieves the products of a shop.
func (srv *productService) ListByShop(ctx context.Context, shopID int64) ([]entity.Product, error) {
	products, err := srv.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return products, nil
}

// Save creates the product when no ID is bound, updates it otherwise.
func (srv *productService) Save(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	req := &repository.ProductRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
	}

	if input.ID == 0 {
		srv.logger.Info("Creating product", "shopID", input.ShopID, "name", input.Name)

		product, err := srv.productRepo.Create(ctx, input.ShopID, req)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create product")
		}

		return product, nil
	}

	srv.logger.Info("Updating product", "productID", input.ID, "name", input.Name)

	product, err := srv.productRepo.Update(ctx, input.ID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes the selected products with the same single-versus-bulk rule
// as shops.
func (srv *productService) Delete(ctx context.Context, ids []int64) error {
	switch len(ids) {
	case 0:
		return domainerrors.ErrNoSelection
	case 1:
		srv.logger.Info("Deleting product", "productID", ids[0])
		if err := srv.productRepo.Delete(ctx, ids[0]); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}
	default:
		srv.logger.Info("Deleting products", "count", len(ids))
		if err := srv.productRepo.BulkDelete(ctx, ids); err != nil {
			return errors.Wrap(err, "failed to delete products")
		}
	}

	return nil
}

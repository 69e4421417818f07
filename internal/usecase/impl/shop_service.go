package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// directoryFanOutLimit bounds how many product fetches run at once when
// building the cross-tenant directory.
const directoryFanOutLimit = 8

// shopService implements the ShopUsecase interface.
type shopService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// MyShops lists the calling user's shops.
func (srv *shopService) MyShops(ctx context.Context) ([]entity.Shop, error) {
	shops, err := srv.shopRepo.Mine(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}

	return shops, nil
}

// Directory loads every shop, then fans out one product fetch per shop. The
// fan-out is failure-isolated: a shop whose fetch fails gets an empty product
// list and the snapshot still succeeds. Only the initial shop listing can
// fail the operation.
func (srv *shopService) Directory(ctx context.Context) (*usecase.Directory, error) {
	shops, err := srv.shopRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}

	products := make(map[int64][]entity.Product, len(shops))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(directoryFanOutLimit)

	for i := range shops {
		shop := shops[i]
		group.Go(func() error {
			list, err := srv.productRepo.ListByShop(groupCtx, shop.ID)
			if err != nil {
				// Isolated: the shop renders with zero products.
				srv.logger.Warn("product fetch failed for shop",
					slog.Int64("shopID", shop.ID),
					slog.Any("error", err),
				)
				list = nil
			}

			mu.Lock()
			products[shop.ID] = list
			mu.Unlock()

			return nil
		})
	}

	// Branches never return errors; Wait only orders the conjunction.
	_ = group.Wait()

	return &usecase.Directory{Shops: shops, Products: products}, nil
}

// Shop retrieves one shop.
func (srv *shopService) Shop(ctx context.Context, id int64) (*entity.Shop, error) {
	shop, err := srv.shopRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "find shop")
		}

		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// Register creates a shop. Submission is rejected locally, with no network
// request, while coordinates are missing.
func (srv *shopService) Register(ctx context.Context, input *usecase.RegisterShopInput) (*entity.Shop, error) {
	if input.Location == nil {
		return nil, domainerrors.ErrLocationRequired
	}
	if !input.DeliveryOption.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "delivery option %q", input.DeliveryOption)
	}

	srv.logger.Info("Registering shop", "name", input.Name)

	req := &repository.ShopRequest{
		Name:           input.Name,
		Address:        input.Address,
		Phone:          input.Phone,
		OpenHours:      input.OpenHours,
		DeliveryOption: input.DeliveryOption,
		Latitude:       input.Location.Lat(),
		Longitude:      input.Location.Lon(),
		OwnerID:        input.OwnerID,
	}

	shop, err := srv.shopRepo.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register shop")
	}

	return shop, nil
}

// Delete removes the selected shops. One id goes through the single-item
// endpoint, several through the bulk endpoint, never both.
func (srv *shopService) Delete(ctx context.Context, ids []int64) error {
	switch len(ids) {
	case 0:
		return domainerrors.ErrNoSelection
	case 1:
		srv.logger.Info("Deleting shop", "shopID", ids[0])
		if err := srv.shopRepo.Delete(ctx, ids[0]); err != nil {
			return errors.Wrap(err, "failed to delete shop")
		}
	default:
		srv.logger.Info("Deleting shops", "count", len(ids))
		if err := srv.shopRepo.BulkDelete(ctx, ids); err != nil {
			return errors.Wrap(err, "failed to delete shops")
		}
	}

	return nil
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShopService_MyShops(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	expected := []entity.Shop{{ID: 1, Name: "Corner Espresso"}}

	mockShopRepo.EXPECT().Mine(ctx).Return(expected, nil)

	shops, err := service.MyShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, shops)
}

func TestShopService_Directory_IsolatesProductFetchFailure(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	shops := []entity.Shop{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}}

	mockShopRepo.EXPECT().All(ctx).Return(shops, nil)
	mockProductRepo.EXPECT().ListByShop(mock.Anything, int64(1)).
		Return([]entity.Product{{ID: 10, ShopID: 1, Name: "Latte"}}, nil)
	mockProductRepo.EXPECT().ListByShop(mock.Anything, int64(2)).
		Return([]entity.Product{{ID: 20, ShopID: 2, Name: "Bagel"}, {ID: 21, ShopID: 2, Name: "Muffin"}}, nil)
	mockProductRepo.EXPECT().ListByShop(mock.Anything, int64(3)).
		Return(nil, errors.New("connection reset"))

	dir, err := service.Directory(ctx)
	require.NoError(t, err)
	require.Len(t, dir.Shops, 3)

	// The failed shop renders with zero products; the rest are untouched.
	assert.Equal(t, 1, dir.ProductCount(1))
	assert.Equal(t, 2, dir.ProductCount(2))
	assert.Equal(t, 0, dir.ProductCount(3))
	assert.Equal(t, 3, dir.TotalProducts())
}

func TestShopService_Directory_ShopListingFailureFailsTheSnapshot(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	mockShopRepo.EXPECT().All(ctx).Return(nil, domainerrors.ErrSessionExpired)

	dir, err := service.Directory(ctx)
	assert.Nil(t, dir)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestShopService_Shop_NotFound(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	mockShopRepo.EXPECT().Find(ctx, int64(42)).Return(nil, repository.ErrShopNotFound)

	shop, err := service.Shop(ctx, 42)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_Register_Success(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	point := orb.Point{121.5654, 25.033}
	input := &usecase.RegisterShopInput{
		Name:           "Corner Espresso",
		Address:        "12 Harbor Road",
		Phone:          "555-0199",
		OpenHours:      "Mon-Fri 9:00-18:00",
		DeliveryOption: entity.DeliveryInHouse,
		Location:       &point,
	}

	mockShopRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*repository.ShopRequest")).
		Run(func(_ context.Context, req *repository.ShopRequest) {
			assert.Equal(t, "Corner Espresso", req.Name)
			assert.InDelta(t, 25.033, req.Latitude, 1e-9)
			assert.InDelta(t, 121.5654, req.Longitude, 1e-9)
		}).
		Return(&entity.Shop{ID: 7, Name: "Corner Espresso"}, nil)

	shop, err := service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), shop.ID)
}

func TestShopService_Register_MissingLocationNeverReachesTheNetwork(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	shop, err := service.Register(context.Background(), &usecase.RegisterShopInput{
		Name:           "Corner Espresso",
		Address:        "12 Harbor Road",
		DeliveryOption: entity.DeliveryNone,
		Location:       nil,
	})

	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrLocationRequired)
	// No expectation was registered on the repository: any call would fail.
}

func TestShopService_Register_InvalidDeliveryOption(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	point := orb.Point{121.5654, 25.033}
	shop, err := service.Register(context.Background(), &usecase.RegisterShopInput{
		Name:           "Corner Espresso",
		DeliveryOption: entity.DeliveryOption("DRONE"),
		Location:       &point,
	})

	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShopService_Delete_SingleSelectionUsesSingleEndpoint(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	mockShopRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	require.NoError(t, service.Delete(ctx, []int64{7}))
}

func TestShopService_Delete_MultipleSelectionUsesBulkEndpoint(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	ctx := context.Background()
	mockShopRepo.EXPECT().BulkDelete(ctx, []int64{7, 9}).Return(nil)

	require.NoError(t, service.Delete(ctx, []int64{7, 9}))
}

func TestShopService_Delete_EmptySelection(t *testing.T) {
	mockShopRepo := mockRepo.NewMockShopRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewShopService(mockShopRepo, mockProductRepo, discardLogger())

	err := service.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelection)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// shopRepository talks to the shop endpoints of the inventory API.
type shopRepository struct {
	client *Client
}

// NewShopRepository is the constructor for the API-backed ShopRepository.
func NewShopRepository(client *Client) repository.ShopRepository {
	return &shopRepository{client: client}
}

// shopDTO mirrors the upstream wire shape. Coordinates are nullable until
// the owner captures a location.
type shopDTO struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	OpenHours      string   `json:"openHours"`
	DeliveryOption string   `json:"deliveryOption"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	OwnerID        int64    `json:"ownerId"`
}

func (d *shopDTO) toEntity() entity.Shop {
	shop := entity.Shop{
		ID:             d.ID,
		Name:           d.Name,
		Address:        d.Address,
		Phone:          d.Phone,
		OpenHours:      d.OpenHours,
		DeliveryOption: entity.DeliveryOption(d.DeliveryOption),
		OwnerID:        d.OwnerID,
	}
	if d.Latitude != nil && d.Longitude != nil {
		point := orb.Point{*d.Longitude, *d.Latitude}
		shop.Location = &point
	}

	return shop
}

func toShops(dtos []shopDTO) []entity.Shop {
	shops := make([]entity.Shop, 0, len(dtos))
	for i := range dtos {
		shops = append(shops, dtos[i].toEntity())
	}

	return shops
}

// Mine lists the shops owned by the calling user.
func (r *shopRepository) Mine(ctx context.Context) ([]entity.Shop, error) {
	var dtos []shopDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/shops/mine", nil, &dtos); err != nil {
		return nil, errors.Wrap(err, "list my shops")
	}

	return toShops(dtos), nil
}

// All lists every shop in the system. Admin-only upstream.
func (r *shopRepository) All(ctx context.Context) ([]entity.Shop, error) {
	var dtos []shopDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/v1/shops", nil, &dtos); err != nil {
		return nil, errors.Wrap(err, "list all shops")
	}

	return toShops(dtos), nil
}

// Find retrieves a single shop by its ID.
func (r *shopRepository) Find(ctx context.Context, id int64) (*entity.Shop, error) {
	var dto shopDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/shops/%d", id), nil, &dto); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "find shop")
	}

	shop := dto.toEntity()

	return &shop, nil
}

// Create registers a new shop and returns the created entity.
func (r *shopRepository) Create(ctx context.Context, req *repository.ShopRequest) (*entity.Shop, error) {
	var dto shopDTO
	if err := r.client.do(ctx, http.MethodPost, "/api/v1/shops", req, &dto); err != nil {
		return nil, errors.Wrap(err, "create shop")
	}

	shop := dto.toEntity()

	return &shop, nil
}

// Delete removes a single shop by its ID.
func (r *shopRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/shops/%d", id), nil, nil); err != nil {
		if errors.Is(err, errNotFound) {
			return repository.ErrShopNotFound
		}

		return errors.Wrap(err, "delete shop")
	}

	return nil
}

// BulkDelete removes multiple shops in one call; the body is the id list.
func (r *shopRepository) BulkDelete(ctx context.Context, ids []int64) error {
	if err := r.client.do(ctx, http.MethodDelete, "/api/v1/shops/bulk", ids, nil); err != nil {
		return errors.Wrap(err, "bulk delete shops")
	}

	return nil
}

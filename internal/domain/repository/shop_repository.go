// Package repository defines the interfaces for the remote inventory API.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer; here the "storage" is the upstream REST
// service, never a local database.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrShopNotFound is returned when the upstream answers 404 for a shop.
var ErrShopNotFound = errors.New("shop not found")

// ShopRequest is the request-shaped structure for creating a shop. It is
// deliberately distinct from entity.Shop: no ID, and the owner field is only
// honored upstream when the caller is an administrator.
type ShopRequest struct {
	Name           string                `json:"name" validate:"required"`
	Address        string                `json:"address" validate:"required"`
	Phone          string                `json:"phone" validate:"required"`
	OpenHours      string                `json:"openHours" validate:"required"`
	DeliveryOption entity.DeliveryOption `json:"deliveryOption" validate:"required"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	OwnerID        *int64                `json:"ownerId,omitempty"`
}

// ShopRepository defines the shop operations of the inventory API.
// The application layer depends on this interface, not the HTTP client.
type ShopRepository interface {
	// Mine lists the shops owned by the calling user.
	Mine(ctx context.Context) ([]entity.Shop, error)

	// All lists every shop in the system. Admin-only upstream.
	All(ctx context.Context) ([]entity.Shop, error)

	// Find retrieves a single shop by its ID.
	Find(ctx context.Context, id int64) (*entity.Shop, error)

	// Create registers a new shop and returns the created entity.
	Create(ctx context.Context, req *ShopRequest) (*entity.Shop, error)

	// Delete removes a single shop by its ID.
	Delete(ctx context.Context, id int64) error

	// BulkDelete removes multiple shops in one call; the body is the id list.
	BulkDelete(ctx context.Context, ids []int64) error
}

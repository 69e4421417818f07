package usecase

import (
	"context"
	"strings"

	"storefront/internal/domain/collection"
	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RegisterShopInput carries the shop registration form. Location is nil
// until the capture step succeeds; registration is rejected locally while it
// is missing.
type RegisterShopInput struct {
	Name           string
	Address        string
	Phone          string
	OpenHours      string
	DeliveryOption entity.DeliveryOption
	Location       *orb.Point
	// OwnerID assigns the shop to another user; honored only for sessions
	// that resolve CanAssignOwner.
	OwnerID *int64
}

// Directory is a cross-tenant snapshot: every shop plus its product list.
// Product lists come from a concurrent fan-out; a shop whose product fetch
// failed carries an empty list rather than failing the snapshot.
type Directory struct {
	Shops    []entity.Shop
	Products map[int64][]entity.Product
}

// ProductCount returns the number of products known for a shop.
func (d *Directory) ProductCount(shopID int64) int {
	return len(d.Products[shopID])
}

// TotalProducts returns the number of products across all shops.
func (d *Directory) TotalProducts() int {
	total := 0
	for _, products := range d.Products {
		total += len(products)
	}

	return total
}

// ProductNames returns the product names of a shop in fetch order.
func (d *Directory) ProductNames(shopID int64) []string {
	products := d.Products[shopID]
	names := make([]string, 0, len(products))
	for i := range products {
		names = append(names, products[i].Name)
	}

	return names
}

// Filter returns the shops matching the query: a case-insensitive substring
// of the shop's name, address or phone, or of any of its product names.
// Fetch order is preserved and the empty query returns every shop.
func (d *Directory) Filter(query string) []entity.Shop {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return d.Shops
	}

	return collection.Filter(d.Shops, func(shop *entity.Shop) bool {
		if shop.Matches(query) {
			return true
		}
		for _, product := range d.Products[shop.ID] {
			if strings.Contains(strings.ToLower(product.Name), query) {
				return true
			}
		}

		return false
	})
}

// ShopUsecase covers the shop views: listing, detail, registration and the
// two-step delete.
type ShopUsecase interface {
	// MyShops lists the calling user's shops.
	MyShops(ctx context.Context) ([]entity.Shop, error)

	// Directory loads every shop with its products fanned out concurrently.
	Directory(ctx context.Context) (*Directory, error)

	// Shop retrieves one shop.
	Shop(ctx context.Context, id int64) (*entity.Shop, error)

	// Register creates a shop after the local coordinate gate passes.
	Register(ctx context.Context, input *RegisterShopInput) (*entity.Shop, error)

	// Delete removes the selected shops: the single-item endpoint for one
	// id, the bulk endpoint for several, never both.
	Delete(ctx context.Context, ids []int64) error
}

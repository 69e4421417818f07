package entity

import (
	"strings"
	"time"
)

// Product is a single inventory line of a shop.
type Product struct {
	ID          int64
	ShopID      int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	CreatedAt   time.Time
}

// Matches reports whether the query is a case-insensitive substring of the
// product's name, description or category. The empty query matches every
// product.
func (p *Product) Matches(query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	for _, field := range []string{p.Name, p.Description, p.Category} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

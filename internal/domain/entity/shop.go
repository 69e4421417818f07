// Package entity contains the core business objects of the console.
package entity

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Shop is a registered storefront as the inventory API reports it.
type Shop struct {
	ID             int64
	Name           string
	Address        string
	Phone          string
	OpenHours      string
	DeliveryOption DeliveryOption
	// Location is nil when the shop was registered without coordinates.
	// Stored as orb.Point, so longitude first.
	Location  *orb.Point
	OwnerID   int64
	OwnerName string
	CreatedAt time.Time
}

// Latitude returns the shop latitude and whether coordinates are set.
func (s *Shop) Latitude() (float64, bool) {
	if s.Location == nil {
		return 0, false
	}

	return s.Location.Lat(), true
}

// Longitude returns the shop longitude and whether coordinates are set.
func (s *Shop) Longitude() (float64, bool) {
	if s.Location == nil {
		return 0, false
	}

	return s.Location.Lon(), true
}

// Matches reports whether the query is a case-insensitive substring of the
// shop's name, address or phone. The empty query matches every shop.
func (s *Shop) Matches(query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	for _, field := range []string{s.Name, s.Address, s.Phone} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

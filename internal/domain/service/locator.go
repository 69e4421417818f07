// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
)

// ErrLocationUnavailable is returned when the capture fails or times out.
var ErrLocationUnavailable = errors.New("location unavailable")

// Locator captures the operator's current geocoordinates. The capture is a
// one-shot request with a fixed timeout; callers retry manually, never
// automatically.
type Locator interface {
	// Locate returns the current position as (lng, lat).
	Locate(ctx context.Context) (orb.Point, error)
}

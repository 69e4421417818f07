// Package collection provides the shared load/filter state machine behind
// the console's list and detail views. Every view follows the same shape:
// fetch a remote set once, hold it in memory, derive a filtered subset from a
// free-text query, and re-fetch after mutations. Centralizing that here gives
// one tested implementation instead of a near-duplicate per view.
package collection

import "context"

// Status describes where a remote collection is in its lifecycle.
type Status int

const (
	// Loading means the fetch has not completed yet.
	Loading Status = iota
	// Loaded means the fetch succeeded and Data is the full entity set.
	Loaded
	// Failed means the fetch failed; Err carries the cause and Data is nil.
	Failed
)

// String returns a readable name for the status.
func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result holds the outcome of loading a remote collection.
type Result[T any] struct {
	Status Status
	Data   []T
	Err    error
}

// Load runs the fetcher once and folds the outcome into a Result. There is no
// retry; a failed load stays failed until the caller loads again.
func Load[T any](ctx context.Context, fetch func(context.Context) ([]T, error)) Result[T] {
	data, err := fetch(ctx)
	if err != nil {
		return Result[T]{Status: Failed, Err: err}
	}

	return Result[T]{Status: Loaded, Data: data}
}

// Filter returns the items matching the predicate, preserving order. A nil
// predicate is the identity. The input slice is never mutated.
func Filter[T any](items []T, pred func(*T) bool) []T {
	if pred == nil {
		return items
	}

	filtered := make([]T, 0, len(items))
	for i := range items {
		if pred(&items[i]) {
			filtered = append(filtered, items[i])
		}
	}

	return filtered
}

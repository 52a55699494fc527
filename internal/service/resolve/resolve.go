// Package resolve turns requested id lists into entities, failing with one
// aggregated domain.NotFoundError when any id is unknown.
package resolve

import (
	"context"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Loader fetches the subset of ids that exist.
type Loader[T any] func(ctx context.Context, ids []int64) ([]*T, error)

// Resolve looks every id up in one batch and returns the entities in request order.
// A repeated id yields the same entity repeatedly. If any id is missing, no entities
// are returned and the error lists every missing id in request order, repeats included.
func Resolve[T any](ctx context.Context, kind domain.EntityKind, ids []int64, load Loader[T], idOf func(*T) int64) ([]*T, error) {
	found, err := load(ctx, distinct(ids))
	if err != nil {
		return nil, fmt.Errorf("load %s ids: %w", kind.Label(), err)
	}
	return Ordered(kind, ids, found, idOf)
}

// Ordered matches found entities against the requested ids.
func Ordered[T any](kind domain.EntityKind, ids []int64, found []*T, idOf func(*T) int64) ([]*T, error) {
	byID := make(map[int64]*T, len(found))
	for _, f := range found {
		byID[idOf(f)] = f
	}

	out := make([]*T, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, f)
	}

	if len(missing) > 0 {
		return nil, domain.NewNotFoundError(kind, missing...)
	}
	return out, nil
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

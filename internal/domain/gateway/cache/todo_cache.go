package cache

import (
	"context"

	"todo-api/internal/domain/entity"
)

// TodoCache is the cache-aside store for the public todo listing. A (nil,
// nil) Get is a miss. Implementations must treat failures as misses so the
// listing never depends on cache availability.
type TodoCache interface {
	GetListing(ctx context.Context) ([]entity.Todo, error)
	SetListing(ctx context.Context, todos []entity.Todo) error
	Invalidate(ctx context.Context) error
}

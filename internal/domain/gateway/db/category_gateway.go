package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

type CategoryGateway interface {
	// FindAll returns every category ordered by name ascending.
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete removes the category and its join rows, never the todos behind them.
	Delete(ctx context.Context, id uint) error
}

package db

import (
	"context"
	"time"

	"todo-api/internal/domain/entity"
)

type TodoGateway interface {
	// FindAll returns every todo ordered by id descending, with categories
	// and comments loaded.
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id uint) (*entity.Todo, error)

	// Create persists the todo and its category associations atomically.
	Create(ctx context.Context, todo *entity.Todo, categoryIDs []uint) error
	// Update rewrites the todo row and replaces its category associations
	// atomically. The row must already exist.
	Update(ctx context.Context, todo *entity.Todo, categoryIDs []uint) error
	// DeleteCascade removes the todo, all its comments and all its join rows
	// in one transaction.
	DeleteCascade(ctx context.Context, id uint) error

	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

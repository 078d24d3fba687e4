package todo

import (
	"context"
	"time"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id uint) (*entity.Todo, error)

	Create(ctx context.Context, principal *auth.Principal, dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(ctx context.Context, principal *auth.Principal, id uint, dto model.UpdateTodoDTO) (*entity.Todo, error)
	// Delete removes the todo with its comments and category associations.
	// A non-matching token makes it a silent no-op, not an error.
	Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error)

	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

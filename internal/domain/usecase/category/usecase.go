package category

import (
	"context"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	Create(ctx context.Context, principal *auth.Principal, dto model.CreateCategoryDTO) (*entity.Category, error)
	Update(ctx context.Context, principal *auth.Principal, id uint, dto model.UpdateCategoryDTO) (*entity.Category, error)
	// Delete removes the category and its join rows only; todos survive.
	// A non-matching token makes it a silent no-op, not an error.
	Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error)
}

package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

type CommentGateway interface {
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	// Delete removes exactly one comment row, with no cascade effects.
	Delete(ctx context.Context, id uint) error
}

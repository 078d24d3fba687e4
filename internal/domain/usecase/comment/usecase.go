package comment

import (
	"context"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Create attaches a comment to an existing todo. The creation timestamp
	// is always observed server-side; a client-supplied value is discarded.
	Create(ctx context.Context, principal *auth.Principal, todoID uint, dto model.CreateCommentDTO) (*entity.Comment, error)
	// Delete removes exactly one comment. A non-matching token makes it a
	// silent no-op, not an error.
	Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error)
}

package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type commentUseCase struct {
	comments db.CommentGateway
	todos    db.TodoGateway
	gate     *auth.Gate
	cache    cache.TodoCache
	events   *queue.EventPublisher
}

// NewCommentUseCase wires the comment operations. The todo gateway is used
// to re-check the owning todo right before attaching. cache and events may
// be nil.
func NewCommentUseCase(comments db.CommentGateway, todos db.TodoGateway, gate *auth.Gate, listingCache cache.TodoCache, events *queue.EventPublisher) UseCase {
	return &commentUseCase{
		comments: comments,
		todos:    todos,
		gate:     gate,
		cache:    listingCache,
		events:   events,
	}
}

func (uc *commentUseCase) Create(ctx context.Context, principal *auth.Principal, todoID uint, dto model.CreateCommentDTO) (*entity.Comment, error) {
	if err := uc.gate.Authorize(principal, auth.OpCreate, auth.KindComment); err != nil {
		return nil, err
	}

	if _, err := uc.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(dto.Content) == "" {
		return nil, model.NewValidationError(map[string]string{
			"content": msg.GetMessage("comment.validation.content-required"),
		})
	}

	// dto.CreatedAt is deliberately ignored.
	comment := entity.Comment{
		TodoID:    todoID,
		Content:   dto.Content,
		CreatedAt: time.Now(),
	}

	if err := uc.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpCreate), comment.ID)
	return &comment, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error) {
	if err := uc.gate.Authorize(principal, auth.OpDelete, auth.KindComment); err != nil {
		return nil, err
	}

	if _, err := uc.comments.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.gate.Tokens().ValidateDelete(auth.KindComment, id, token); err != nil {
		if errors.Is(err, model.ErrCsrfRejected) {
			return model.NoOpDelete(), nil
		}
		return nil, err
	}

	if err := uc.comments.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpDelete), id)
	return model.CompletedDelete(msg.GetMessage("comment.flash.deleted")), nil
}

func (uc *commentUseCase) afterMutation(ctx context.Context, operation string, id uint) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	uc.events.Publish(ctx, string(auth.KindComment), operation, id)
}

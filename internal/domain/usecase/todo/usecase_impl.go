package todo

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const titleMaxLength = 180

type todoUseCase struct {
	gateway db.TodoGateway
	gate    *auth.Gate
	cache   cache.TodoCache
	events  *queue.EventPublisher
}

// NewTodoUseCase wires the todo operations. cache and events may be nil.
func NewTodoUseCase(gateway db.TodoGateway, gate *auth.Gate, listingCache cache.TodoCache, events *queue.EventPublisher) UseCase {
	return &todoUseCase{
		gateway: gateway,
		gate:    gate,
		cache:   listingCache,
		events:  events,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context) ([]entity.Todo, error) {
	if uc.cache != nil {
		if todos, err := uc.cache.GetListing(ctx); err == nil && todos != nil {
			return todos, nil
		}
	}

	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.SetListing(ctx, todos)
	}
	return todos, nil
}

func (uc *todoUseCase) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	return uc.gateway.FindByID(ctx, id)
}

func (uc *todoUseCase) Create(ctx context.Context, principal *auth.Principal, dto model.CreateTodoDTO) (*entity.Todo, error) {
	if err := uc.gate.Authorize(principal, auth.OpCreate, auth.KindTodo); err != nil {
		return nil, err
	}
	if err := validateTitle(dto.Title); err != nil {
		return nil, err
	}

	todo := entity.Todo{
		Title:       dto.Title,
		Description: dto.Description,
		DueAt:       dto.DueAt,
	}
	if dto.IsCompleted != nil {
		todo.IsCompleted = *dto.IsCompleted
	}

	if err := uc.gateway.Create(ctx, &todo, dto.CategoryIDs); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpCreate), todo.ID)
	return uc.gateway.FindByID(ctx, todo.ID)
}

func (uc *todoUseCase) Update(ctx context.Context, principal *auth.Principal, id uint, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if err := uc.gate.Authorize(principal, auth.OpUpdate, auth.KindTodo); err != nil {
		return nil, err
	}

	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateTitle(dto.Title); err != nil {
		return nil, err
	}

	existing.Title = dto.Title
	existing.Description = dto.Description
	existing.DueAt = dto.DueAt
	if dto.IsCompleted != nil {
		existing.IsCompleted = *dto.IsCompleted
	}

	if err := uc.gateway.Update(ctx, existing, dto.CategoryIDs); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpUpdate), id)
	return uc.gateway.FindByID(ctx, id)
}

func (uc *todoUseCase) Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error) {
	if err := uc.gate.Authorize(principal, auth.OpDelete, auth.KindTodo); err != nil {
		return nil, err
	}

	if _, err := uc.gateway.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.gate.Tokens().ValidateDelete(auth.KindTodo, id, token); err != nil {
		if errors.Is(err, model.ErrCsrfRejected) {
			return model.NoOpDelete(), nil
		}
		return nil, err
	}

	if err := uc.gateway.DeleteCascade(ctx, id); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpDelete), id)
	return model.CompletedDelete(msg.GetMessage("todo.flash.deleted")), nil
}

func (uc *todoUseCase) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	return uc.gateway.CountOverdue(ctx, now)
}

func (uc *todoUseCase) afterMutation(ctx context.Context, operation string, id uint) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	uc.events.Publish(ctx, string(auth.KindTodo), operation, id)
}

func validateTitle(title string) error {
	fields := make(map[string]string)
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		fields["title"] = msg.GetMessage("todo.validation.title-required")
	} else if utf8.RuneCountInString(title) > titleMaxLength {
		fields["title"] = msg.GetMessage("todo.validation.title-too-long", titleMaxLength)
	}

	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

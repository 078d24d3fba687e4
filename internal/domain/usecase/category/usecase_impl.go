package category

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const nameMaxLength = 120

type categoryUseCase struct {
	gateway db.CategoryGateway
	gate    *auth.Gate
	cache   cache.TodoCache
	events  *queue.EventPublisher
}

// NewCategoryUseCase wires the category operations. The todo listing cache
// embeds each todo's categories, so category mutations invalidate it too.
// cache and events may be nil.
func NewCategoryUseCase(gateway db.CategoryGateway, gate *auth.Gate, listingCache cache.TodoCache, events *queue.EventPublisher) UseCase {
	return &categoryUseCase{
		gateway: gateway,
		gate:    gate,
		cache:   listingCache,
		events:  events,
	}
}

func (uc *categoryUseCase) FindAll(ctx context.Context) ([]entity.Category, error) {
	return uc.gateway.FindAll(ctx)
}

func (uc *categoryUseCase) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	return uc.gateway.FindByID(ctx, id)
}

func (uc *categoryUseCase) Create(ctx context.Context, principal *auth.Principal, dto model.CreateCategoryDTO) (*entity.Category, error) {
	if err := uc.gate.Authorize(principal, auth.OpCreate, auth.KindCategory); err != nil {
		return nil, err
	}
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}

	category := entity.Category{Name: dto.Name}
	if err := uc.gateway.Create(ctx, &category); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpCreate), category.ID)
	return &category, nil
}

func (uc *categoryUseCase) Update(ctx context.Context, principal *auth.Principal, id uint, dto model.UpdateCategoryDTO) (*entity.Category, error) {
	if err := uc.gate.Authorize(principal, auth.OpUpdate, auth.KindCategory); err != nil {
		return nil, err
	}

	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateName(dto.Name); err != nil {
		return nil, err
	}

	existing.Name = dto.Name
	if err := uc.gateway.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpUpdate), id)
	return existing, nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, principal *auth.Principal, id uint, token string) (*model.DeleteResult, error) {
	if err := uc.gate.Authorize(principal, auth.OpDelete, auth.KindCategory); err != nil {
		return nil, err
	}

	if _, err := uc.gateway.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.gate.Tokens().ValidateDelete(auth.KindCategory, id, token); err != nil {
		if errors.Is(err, model.ErrCsrfRejected) {
			return model.NoOpDelete(), nil
		}
		return nil, err
	}

	if err := uc.gateway.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, string(auth.OpDelete), id)
	return model.CompletedDelete(msg.GetMessage("category.flash.deleted")), nil
}

func (uc *categoryUseCase) afterMutation(ctx context.Context, operation string, id uint) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	uc.events.Publish(ctx, string(auth.KindCategory), operation, id)
}

func validateName(name string) error {
	fields := make(map[string]string)
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		fields["name"] = msg.GetMessage("category.validation.name-required")
	} else if utf8.RuneCountInString(name) > nameMaxLength {
		fields["name"] = msg.GetMessage("category.validation.name-too-long", nameMaxLength)
	}

	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

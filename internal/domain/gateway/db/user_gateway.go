package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

type UserGateway interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

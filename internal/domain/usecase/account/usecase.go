package account

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Register creates a user with a bcrypt-hashed password and the default
	// ROLE_USER role. Duplicate emails fail with a ConstraintViolation.
	Register(ctx context.Context, dto model.RegisterDTO) (*entity.User, error)
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, dto model.LoginDTO) (*model.TokenResponse, error)
}

package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const (
	emailMaxLength    = 180
	passwordMinLength = 6
)

type accountUseCase struct {
	users     db.UserGateway
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAccountUseCase(users db.UserGateway, jwtSecret string, tokenTTL time.Duration) UseCase {
	return &accountUseCase{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (uc *accountUseCase) Register(ctx context.Context, dto model.RegisterDTO) (*entity.User, error) {
	if err := validateRegistration(dto); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		Email:    dto.Email,
		Roles:    entity.RoleList{auth.RoleUser},
		Password: string(hash),
	}

	if err := uc.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *accountUseCase) Login(ctx context.Context, dto model.LoginDTO) (*model.TokenResponse, error) {
	user, err := uc.users.FindByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := auth.SignToken(user, uc.jwtSecret, uc.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &model.TokenResponse{Token: token}, nil
}

func invalidCredentials() error {
	return fmt.Errorf("%w: %s", model.ErrUnauthorized, msg.GetMessage("account.error.invalid-credentials"))
}

func validateRegistration(dto model.RegisterDTO) error {
	fields := make(map[string]string)

	if _, err := mail.ParseAddress(dto.Email); err != nil {
		fields["email"] = msg.GetMessage("account.validation.email-invalid")
	} else if utf8.RuneCountInString(dto.Email) > emailMaxLength {
		fields["email"] = msg.GetMessage("account.validation.email-too-long", emailMaxLength)
	}

	if utf8.RuneCountInString(dto.Password) < passwordMinLength {
		fields["password"] = msg.GetMessage("account.validation.password-too-short", passwordMinLength)
	}

	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

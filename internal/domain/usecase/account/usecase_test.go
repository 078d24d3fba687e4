package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/account"
)

func getUseCase(assert *assert.Assertions) account.UseCase {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.Nil(err)

	sqlDB, err := conn.DB()
	assert.Nil(err)
	sqlDB.SetMaxOpenConns(1)

	assert.Nil(conn.AutoMigrate(&entity.User{}))

	return account.NewAccountUseCase(db.NewGormUserGateway(conn), "jwt-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	user, err := useCase.Register(context.Background(), model.RegisterDTO{Email: "member@example.com", Password: "hunter22"})
	assert.Nil(err)
	assert.NotZero(user.ID)
	assert.Equal("member@example.com", user.Email)
	assert.Contains(user.Roles, auth.RoleUser)

	// stored as a bcrypt hash, never the plain password
	assert.NotEqual("hunter22", user.Password)
	assert.Nil(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	_, err := useCase.Register(context.Background(), model.RegisterDTO{Email: "member@example.com", Password: "hunter22"})
	assert.Nil(err)

	user, err := useCase.Register(context.Background(), model.RegisterDTO{Email: "member@example.com", Password: "another1"})
	assert.Nil(user)
	assert.True(errors.Is(err, model.ErrConstraintViolation))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	cases := []model.RegisterDTO{
		{Email: "", Password: "hunter22"},
		{Email: "not-an-email", Password: "hunter22"},
		{Email: "member@example.com", Password: "short"},
	}
	for _, dto := range cases {
		user, err := useCase.Register(context.Background(), dto)
		assert.Nil(user)
		assert.True(errors.Is(err, model.ErrValidationFailed))
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	_, err := useCase.Register(context.Background(), model.RegisterDTO{Email: "member@example.com", Password: "hunter22"})
	assert.Nil(err)

	response, err := useCase.Login(context.Background(), model.LoginDTO{Email: "member@example.com", Password: "hunter22"})
	assert.Nil(err)
	assert.NotEmpty(response.Token)

	// the issued token carries a principal that passes the mutation gate
	principal, err := auth.ParsePrincipal(response.Token, "jwt-secret")
	assert.Nil(err)
	assert.Nil(auth.NewGate("csrf-secret").Authorize(principal, auth.OpCreate, auth.KindTodo))
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	_, err := useCase.Register(context.Background(), model.RegisterDTO{Email: "member@example.com", Password: "hunter22"})
	assert.Nil(err)

	response, err := useCase.Login(context.Background(), model.LoginDTO{Email: "member@example.com", Password: "wrong"})
	assert.Nil(response)
	assert.True(errors.Is(err, model.ErrUnauthorized))
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := getUseCase(assert)

	response, err := useCase.Login(context.Background(), model.LoginDTO{Email: "nobody@example.com", Password: "hunter22"})
	assert.Nil(response)
	// unknown users and wrong passwords are indistinguishable to the caller
	assert.True(errors.Is(err, model.ErrUnauthorized))
}

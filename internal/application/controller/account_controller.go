package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/account"
)

type AccountController struct {
	api     *echo.Group
	useCase account.UseCase
}

func NewAccountController(api *echo.Group, useCase account.UseCase) *AccountController {
	return &AccountController{api: api, useCase: useCase}
}

// InitAccountRoutes initializes account routes
func (controller *AccountController) InitAccountRoutes() {
	controller.api.POST("/auth/register", controller.Register)
	controller.api.POST("/auth/login", controller.Login)
}

// Register godoc
// @Summary Register a user
// @Description Create a user account with the default ROLE_USER role
// @Tags account
// @Accept json
// @Produce json
// @Param account body model.RegisterDTO true "Registration data"
// @Success 201 {object} entity.User "Created user"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 422 {object} map[string]interface{} "Validation failure"
// @Router /auth/register [post]
func (controller *AccountController) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := controller.useCase.Register(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a session token
// @Tags account
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Login data"
// @Success 200 {object} model.TokenResponse "Session token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (controller *AccountController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	token, err := controller.useCase.Login(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, token)
}

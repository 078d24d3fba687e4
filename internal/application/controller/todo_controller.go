package controller

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
	gate    *auth.Gate
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, gate *auth.Gate) *TodoController {
	return &TodoController{api: api, useCase: useCase, gate: gate}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos/public", controller.PublicIndex)
	controller.api.GET("/todos", controller.Index)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// PublicIndex godoc
// @Summary List all todos (public)
// @Description Retrieve every todo ordered by id descending; requires no authentication
// @Tags todo
// @Produce json
// @Success 200 {array} entity.Todo "Todos, most recent first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/public [get]
func (controller *TodoController) PublicIndex(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Index godoc
// @Summary List all todos
// @Description Retrieve every todo ordered by id descending
// @Tags todo
// @Produce json
// @Success 200 {array} entity.Todo "Todos, most recent first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) Index(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get a todo by id
// @Description Retrieve one todo with its categories and comments. Authenticated users also receive the delete token for this instance.
// @Tags todo
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} map[string]interface{} "Todo and optional delete token"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	response := map[string]any{"todo": found}
	if middleware.PrincipalFrom(c).HasRole(auth.RoleUser) {
		response["deleteToken"] = controller.gate.Tokens().DeleteToken(auth.KindTodo, id)
	}
	return c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo with optional category associations
// @Tags todo
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} map[string]interface{} "Created todo and flash messages"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 422 {object} map[string]interface{} "Validation failure"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(c.Request().Context(), middleware.PrincipalFrom(c), dto)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"todo":     created,
		"messages": []string{msg.GetMessage("todo.flash.created")},
	})
}

// Update godoc
// @Summary Update a todo
// @Description Rewrite a todo's fields and category associations in place
// @Tags todo
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} map[string]interface{} "Updated todo and flash messages"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 422 {object} map[string]interface{} "Validation failure"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.Update(c.Request().Context(), middleware.PrincipalFrom(c), id, dto)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"todo":     updated,
		"messages": []string{msg.GetMessage("todo.flash.updated")},
	})
}

// Delete godoc
// @Summary Delete a todo
// @Description Remove a todo with its comments and category associations. A non-matching _token leaves everything untouched and answers exactly like a success, minus the flash message.
// @Tags todo
// @Produce json
// @Param id path int true "Todo id"
// @Param _token formData string false "Per-entity delete token"
// @Success 200 {object} model.DeleteResult "Flash messages; empty when nothing was deleted"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	result, err := controller.useCase.Delete(c.Request().Context(), middleware.PrincipalFrom(c), id, deleteToken(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// deleteToken reads the per-entity CSRF token from the form body, falling
// back to the query string. ParseForm ignores the body on DELETE requests,
// so a urlencoded body is read and parsed here.
func deleteToken(c echo.Context) string {
	if token := c.FormValue("_token"); token != "" {
		return token
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationForm) {
		if body, err := io.ReadAll(c.Request().Body); err == nil {
			if values, err := url.ParseQuery(string(body)); err == nil {
				if token := values.Get("_token"); token != "" {
					return token
				}
			}
		}
	}
	return c.QueryParam("_token")
}

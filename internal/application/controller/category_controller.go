package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/auth"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/category"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type CategoryController struct {
	api     *echo.Group
	useCase category.UseCase
	gate    *auth.Gate
}

func NewCategoryController(api *echo.Group, useCase category.UseCase, gate *auth.Gate) *CategoryController {
	return &CategoryController{api: api, useCase: useCase, gate: gate}
}

// InitCategoryRoutes initializes category routes
func (controller *CategoryController) InitCategoryRoutes() {
	controller.api.GET("/categories", controller.Index)
	controller.api.GET("/categories/:id", controller.FindByID)
	controller.api.POST("/categories", controller.Create)
	controller.api.PUT("/categories/:id", controller.Update)
	controller.api.DELETE("/categories/:id", controller.Delete)
}

// Index godoc
// @Summary List all categories
// @Description Retrieve every category ordered by name ascending; requires no authentication
// @Tags category
// @Produce json
// @Success 200 {array} entity.Category "Categories in name order"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (controller *CategoryController) Index(c echo.Context) error {
	categories, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// FindByID godoc
// @Summary Get a category by id
// @Description Retrieve one category. Authenticated users also receive the delete token for this instance.
// @Tags category
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} map[string]interface{} "Category and optional delete token"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [get]
func (controller *CategoryController) FindByID(c echo.Context) error {
	id, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	response := map[string]any{"category": found}
	if middleware.PrincipalFrom(c).HasRole(auth.RoleUser) {
		response["deleteToken"] = controller.gate.Tokens().DeleteToken(auth.KindCategory, id)
	}
	return c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a category
// @Description Create a category; duplicate names fail with a conflict
// @Tags category
// @Accept json
// @Produce json
// @Param category body model.CreateCategoryDTO true "Category creation data"
// @Success 201 {object} map[string]interface{} "Created category and flash messages"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 409 {object} map[string]string "Name already in use"
// @Failure 422 {object} map[string]interface{} "Validation failure"
// @Router /categories [post]
func (controller *CategoryController) Create(c echo.Context) error {
	var dto model.CreateCategoryDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(c.Request().Context(), middleware.PrincipalFrom(c), dto)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"category": created,
		"messages": []string{msg.GetMessage("category.flash.created")},
	})
}

// Update godoc
// @Summary Update a category
// @Description Rename a category in place
// @Tags category
// @Accept json
// @Produce json
// @Param id path int true "Category id"
// @Param category body model.UpdateCategoryDTO true "Category update data"
// @Success 200 {object} map[string]interface{} "Updated category and flash messages"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Name already in use"
// @Router /categories/{id} [put]
func (controller *CategoryController) Update(c echo.Context) error {
	id, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	var dto model.UpdateCategoryDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.Update(c.Request().Context(), middleware.PrincipalFrom(c), id, dto)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"category": updated,
		"messages": []string{msg.GetMessage("category.flash.updated")},
	})
}

// Delete godoc
// @Summary Delete a category
// @Description Remove a category and its todo associations; the todos themselves survive. A non-matching _token leaves everything untouched and answers exactly like a success, minus the flash message.
// @Tags category
// @Produce json
// @Param id path int true "Category id"
// @Param _token formData string false "Per-entity delete token"
// @Success 200 {object} model.DeleteResult "Flash messages; empty when nothing was deleted"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [delete]
func (controller *CategoryController) Delete(c echo.Context) error {
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

package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/comment"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type CommentController struct {
	api     *echo.Group
	useCase comment.UseCase
}

func NewCommentController(api *echo.Group, useCase comment.UseCase) *CommentController {
	return &CommentController{api: api, useCase: useCase}
}

// InitCommentRoutes initializes comment routes
func (controller *CommentController) InitCommentRoutes() {
	controller.api.POST("/todos/:id/comments", controller.Create)
	controller.api.DELETE("/comments/:id", controller.Delete)
}

// Create godoc
// @Summary Add a comment to a todo
// @Description Attach a comment to the referenced todo. The creation timestamp is observed server-side; any client-supplied value is ignored.
// @Tags comment
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param comment body model.CreateCommentDTO true "Comment payload"
// @Success 201 {object} map[string]interface{} "Created comment and flash messages"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 422 {object} map[string]interface{} "Validation failure"
// @Router /todos/{id}/comments [post]
func (controller *CommentController) Create(c echo.Context) error {
	todoID, err := numberutils.ToUint(c.Param("id"))
	if err != nil {
		return errorResponse(c, model.ErrNotFound)
	}

	var dto model.CreateCommentDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(c.Request().Context(), middleware.PrincipalFrom(c), todoID, dto)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"comment":  created,
		"messages": []string{msg.GetMessage("comment.flash.created")},
	})
}

// Delete godoc
// @Summary Delete a comment
// @Description Remove exactly one comment. A non-matching _token leaves it untouched and answers exactly like a success, minus the flash message.
// @Tags comment
// @Produce json
// @Param id path int true "Comment id"
// @Param _token formData string false "Per-entity delete token"
// @Success 200 {object} model.DeleteResult "Flash messages; empty when nothing was deleted"
// @Failure 401 {object} map[string]string "Missing role"
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comments/{id} [delete]
func (controller *CommentController) Delete(c echo.Context) error {
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

package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
)

// errorResponse translates domain error kinds into HTTP statuses.
// Validation and constraint failures are recoverable: the payload keeps the
// field messages so the caller can re-present the input.
func errorResponse(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  model.ErrValidationFailed.Error(),
			"fields": validationErr.Fields,
		})
	case errors.Is(err, model.ErrValidationFailed):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrConstraintViolation):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

// translate maps gorm errors onto the domain error kinds. Requires the
// connection to be opened with TranslateError so driver-specific constraint
// failures arrive as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate key", model.ErrConstraintViolation)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: foreign key violated", model.ErrConstraintViolation)
	default:
		return err
	}
}

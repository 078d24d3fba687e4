package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormCategoryGateway struct {
	DB *gorm.DB
}

var _ CategoryGateway = (*GormCategoryGateway)(nil)

func NewGormCategoryGateway(db *gorm.DB) *GormCategoryGateway {
	return &GormCategoryGateway{DB: db}
}

func (gateway *GormCategoryGateway) FindAll(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0)
	err := gateway.DB.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (gateway *GormCategoryGateway) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := gateway.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// Create relies on the database uniqueness constraint on name; no prior
// existence check, so concurrent duplicate creates lose at commit time with
// a ConstraintViolation.
func (gateway *GormCategoryGateway) Create(ctx context.Context, category *entity.Category) error {
	err := gateway.DB.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	return translate(err)
}

func (gateway *GormCategoryGateway) Update(ctx context.Context, category *entity.Category) error {
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entity.Category
		if err := tx.First(&current, category.ID).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(category).Error
	})
	return translate(err)
}

// Delete removes the category and its join rows only. Todos referenced by
// the removed associations are never touched.
func (gateway *GormCategoryGateway) Delete(ctx context.Context, id uint) error {
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.TodoCategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	})
	return translate(err)
}

package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	err := gateway.DB.WithContext(ctx).
		Preload("Categories").
		Preload("Comments").
		Order("id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, translate(err)
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.WithContext(ctx).
		Preload("Categories").
		Preload("Comments").
		First(&todo, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo *entity.Todo, categoryIDs []uint) error {
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(todo).Error; err != nil {
			return err
		}
		return replaceJoinRows(tx, todo.ID, categoryIDs)
	})
	return translate(err)
}

func (gateway *GormTodoGateway) Update(ctx context.Context, todo *entity.Todo, categoryIDs []uint) error {
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check the persisted row inside the transaction rather than
		// trusting the caller's copy.
		var current entity.Todo
		if err := tx.First(&current, todo.ID).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(todo).Error; err != nil {
			return err
		}

		if err := tx.Where("todo_id = ?", todo.ID).Delete(&entity.TodoCategory{}).Error; err != nil {
			return err
		}
		return replaceJoinRows(tx, todo.ID, categoryIDs)
	})
	return translate(err)
}

// DeleteCascade removes the todo, every comment it owns and every join row
// referencing it inside a single transaction. A failure at any step leaves
// all three tables untouched.
func (gateway *GormTodoGateway) DeleteCascade(ctx context.Context, id uint) error {
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", id).Delete(&entity.TodoCategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Todo{}, id)
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

func (gateway *GormTodoGateway) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Where("due_at IS NOT NULL AND due_at < ? AND is_completed = ?", now, false).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// replaceJoinRows inserts the todo_category rows for the given category ids.
// Duplicate ids collapse into one row; an id without a matching category row
// surfaces as a foreign-key violation from the database.
func replaceJoinRows(tx *gorm.DB, todoID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	seen := make(map[uint]bool, len(categoryIDs))
	rows := make([]entity.TodoCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		if seen[categoryID] {
			continue
		}
		seen[categoryID] = true
		rows = append(rows, entity.TodoCategory{TodoID: todoID, CategoryID: categoryID})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("associate categories: %w", err)
	}
	return nil
}

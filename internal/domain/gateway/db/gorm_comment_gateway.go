package db

import (
	"context"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormCommentGateway struct {
	DB *gorm.DB
}

var _ CommentGateway = (*GormCommentGateway)(nil)

func NewGormCommentGateway(db *gorm.DB) *GormCommentGateway {
	return &GormCommentGateway{DB: db}
}

func (gateway *GormCommentGateway) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := gateway.DB.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (gateway *GormCommentGateway) Create(ctx context.Context, comment *entity.Comment) error {
	err := gateway.DB.WithContext(ctx).Create(comment).Error
	return translate(err)
}

func (gateway *GormCommentGateway) Delete(ctx context.Context, id uint) error {
	result := gateway.DB.WithContext(ctx).Delete(&entity.Comment{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

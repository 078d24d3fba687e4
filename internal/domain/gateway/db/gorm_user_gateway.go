package db

import (
	"context"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := gateway.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create relies on the unique index on email; a duplicate surfaces as a
// ConstraintViolation at commit time.
func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	err := gateway.DB.WithContext(ctx).Create(user).Error
	return translate(err)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"storewatch/internal/model"
)

// UserRepository reads and writes dashboard credentials.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail matches the email exactly, case included.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := new(model.User)
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

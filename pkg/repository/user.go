package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marwood.io/WhiskeyVault/pkg/model"
)

func (r *Repository) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, offset int, limit int) ([]*model.User, error) {
	var users []*model.User

	result := r.DB.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (r *Repository) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.UUID == uuid.Nil {
		user.UUID = uuid.New()
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// UpdateUser locks the row for the duration of the transaction and applies
// mutate to it. The callback runs under the lock, so whatever it writes wins
// over any concurrent update.
func (r *Repository) UpdateUser(ctx context.Context, userID uint, mutate func(*model.User)) (*model.User, error) {
	var user model.User

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID); result.Error != nil {
			return result.Error
		}

		mutate(&user)

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

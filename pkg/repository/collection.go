package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marwood.io/WhiskeyVault/pkg/model"
)

// Every lookup here filters by both primary key and owner in the same query,
// so a record owned by another user surfaces as ErrNotFound.

func (r *Repository) GetUserWhiskey(ctx context.Context, entryID uint, userID uint) (*model.UserWhiskey, error) {
	var entry model.UserWhiskey

	result := r.DB.WithContext(ctx).
		Joins("Whiskey").
		Where("user_whiskeys.id = ? AND user_whiskeys.user_id = ?", entryID, userID).
		First(&entry)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &entry, nil
}

func (r *Repository) ListUserWhiskeys(ctx context.Context, userID uint, offset int, limit int) ([]*model.UserWhiskey, error) {
	var entries []*model.UserWhiskey

	result := r.DB.WithContext(ctx).
		Joins("Whiskey").
		Where("user_whiskeys.user_id = ?", userID).
		Order("user_whiskeys.id asc").
		Offset(offset).
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		r.Logger.Error("error listing collection entries", zap.Uint("user_id", userID), zap.Error(result.Error))

		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) CreateUserWhiskey(ctx context.Context, entry model.UserWhiskey, userID uint) (*model.UserWhiskey, error) {
	entry.UserID = userID

	if result := r.DB.WithContext(ctx).Create(&entry); result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

func (r *Repository) UpdateUserWhiskey(ctx context.Context, entryID uint, userID uint, patch model.UserWhiskeyPatch) (*model.UserWhiskey, error) {
	var entry model.UserWhiskey

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", entryID, userID).
			First(&entry)
		if result.Error != nil {
			return result.Error
		}

		patch.Apply(&entry)

		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &entry, nil
}

func (r *Repository) DeleteUserWhiskey(ctx context.Context, entryID uint, userID uint) (*model.UserWhiskey, error) {
	var entry model.UserWhiskey

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", entryID, userID).
			First(&entry)
		if result.Error != nil {
			return result.Error
		}

		return tx.Delete(&entry).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &entry, nil
}

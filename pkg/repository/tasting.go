package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marwood.io/WhiskeyVault/pkg/model"
)

func (r *Repository) GetTasting(ctx context.Context, tastingID uint, userID uint) (*model.Tasting, error) {
	var tasting model.Tasting

	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", tastingID, userID).
		First(&tasting)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &tasting, nil
}

func (r *Repository) ListTastings(ctx context.Context, userID uint, offset int, limit int) ([]*model.Tasting, error) {
	var tastings []*model.Tasting

	result := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&tastings)
	if result.Error != nil {
		return nil, result.Error
	}

	return tastings, nil
}

func (r *Repository) ListTastingsForUserWhiskey(ctx context.Context, userWhiskeyID uint, userID uint, offset int, limit int) ([]*model.Tasting, error) {
	var tastings []*model.Tasting

	result := r.DB.WithContext(ctx).
		Where("user_whiskey_id = ? AND user_id = ?", userWhiskeyID, userID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&tastings)
	if result.Error != nil {
		return nil, result.Error
	}

	return tastings, nil
}

func (r *Repository) CreateTasting(ctx context.Context, tasting model.Tasting, userID uint) (*model.Tasting, error) {
	tasting.UserID = userID

	if result := r.DB.WithContext(ctx).Create(&tasting); result.Error != nil {
		return nil, result.Error
	}

	return &tasting, nil
}

func (r *Repository) UpdateTasting(ctx context.Context, tastingID uint, userID uint, patch model.TastingPatch) (*model.Tasting, error) {
	var tasting model.Tasting

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", tastingID, userID).
			First(&tasting)
		if result.Error != nil {
			return result.Error
		}

		patch.Apply(&tasting)

		return tx.Save(&tasting).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &tasting, nil
}

func (r *Repository) DeleteTasting(ctx context.Context, tastingID uint, userID uint) (*model.Tasting, error) {
	var tasting model.Tasting

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", tastingID, userID).
			First(&tasting)
		if result.Error != nil {
			return result.Error
		}

		return tx.Delete(&tasting).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &tasting, nil
}

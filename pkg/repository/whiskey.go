package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marwood.io/WhiskeyVault/pkg/model"
)

func (r *Repository) GetWhiskey(ctx context.Context, whiskeyID uint) (*model.Whiskey, error) {
	var whiskey model.Whiskey

	result := r.DB.WithContext(ctx).Joins("Distillery").First(&whiskey, whiskeyID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &whiskey, nil
}

func (r *Repository) ListWhiskeys(ctx context.Context, offset int, limit int) ([]*model.Whiskey, error) {
	var whiskeys []*model.Whiskey

	result := r.DB.WithContext(ctx).
		Joins("Distillery").
		Order("whiskeys.id asc").
		Offset(offset).
		Limit(limit).
		Find(&whiskeys)
	if result.Error != nil {
		return nil, result.Error
	}

	return whiskeys, nil
}

func (r *Repository) CreateWhiskey(ctx context.Context, whiskey model.Whiskey) (*model.Whiskey, error) {
	if result := r.DB.WithContext(ctx).Create(&whiskey); result.Error != nil {
		return nil, result.Error
	}

	return &whiskey, nil
}

func (r *Repository) UpdateWhiskey(ctx context.Context, whiskeyID uint, patch model.WhiskeyPatch) (*model.Whiskey, error) {
	var whiskey model.Whiskey

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&whiskey, whiskeyID); result.Error != nil {
			return result.Error
		}

		patch.Apply(&whiskey)

		return tx.Save(&whiskey).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &whiskey, nil
}

func (r *Repository) DeleteWhiskey(ctx context.Context, whiskeyID uint) (*model.Whiskey, error) {
	var whiskey model.Whiskey

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&whiskey, whiskeyID); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&whiskey).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &whiskey, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marwood.io/WhiskeyVault/pkg/model"
)

func (r *Repository) GetDistillery(ctx context.Context, distilleryID uint) (*model.Distillery, error) {
	var distillery model.Distillery

	result := r.DB.WithContext(ctx).First(&distillery, distilleryID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &distillery, nil
}

func (r *Repository) GetDistilleryByName(ctx context.Context, name string) (*model.Distillery, error) {
	var distillery model.Distillery

	result := r.DB.WithContext(ctx).Where("name = ?", name).First(&distillery)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &distillery, nil
}

func (r *Repository) ListDistilleries(ctx context.Context, offset int, limit int) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery

	result := r.DB.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit).Find(&distilleries)
	if result.Error != nil {
		return nil, result.Error
	}

	return distilleries, nil
}

func (r *Repository) CreateDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error) {
	if result := r.DB.WithContext(ctx).Create(&distillery); result.Error != nil {
		return nil, result.Error
	}

	return &distillery, nil
}

func (r *Repository) UpdateDistillery(ctx context.Context, distilleryID uint, patch model.DistilleryPatch) (*model.Distillery, error) {
	var distillery model.Distillery

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&distillery, distilleryID); result.Error != nil {
			return result.Error
		}

		patch.Apply(&distillery)

		return tx.Save(&distillery).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &distillery, nil
}

func (r *Repository) DeleteDistillery(ctx context.Context, distilleryID uint) (*model.Distillery, error) {
	var distillery model.Distillery

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&distillery, distilleryID); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&distillery).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &distillery, nil
}

package repository

import (
	"context"

	"kitchenpos/models"

	"gorm.io/gorm"
)

type MenuGroupRepository struct {
	db *gorm.DB
}

func NewMenuGroupRepository(db *gorm.DB) *MenuGroupRepository {
	return &MenuGroupRepository{db: db}
}

func (r *MenuGroupRepository) Save(ctx context.Context, g *models.MenuGroup) (*models.MenuGroup, error) {
	saved := *g
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MenuGroupRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.MenuGroup{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MenuGroupRepository) FindAll(ctx context.Context) ([]models.MenuGroup, error) {
	var groups []models.MenuGroup
	err := conn(ctx, r.db).Order("id").Find(&groups).Error
	return groups, err
}

package repository

import (
	"context"

	"kitchenpos/models"

	"gorm.io/gorm"
)

// MenuRepository persists menu rows only; lines go through
// MenuProductRepository.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Save(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	saved := *m
	saved.MenuProducts = nil
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// FindAll returns menus in insertion order.
func (r *MenuRepository) FindAll(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	err := conn(ctx, r.db).Order("id").Find(&menus).Error
	return menus, err
}

type MenuProductRepository struct {
	db *gorm.DB
}

func NewMenuProductRepository(db *gorm.DB) *MenuProductRepository {
	return &MenuProductRepository{db: db}
}

func (r *MenuProductRepository) Save(ctx context.Context, mp *models.MenuProduct) (*models.MenuProduct, error) {
	saved := *mp
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MenuProductRepository) FindAllByMenuID(ctx context.Context, menuID uint) ([]models.MenuProduct, error) {
	var lines []models.MenuProduct
	err := conn(ctx, r.db).Where("menu_id = ?", menuID).Order("id").Find(&lines).Error
	return lines, err
}

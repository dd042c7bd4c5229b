package repository

import (
	"context"

	"kitchenpos/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Save(ctx context.Context, p *models.Product) (*models.Product, error) {
	saved := *p
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := conn(ctx, r.db).First(&p, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := conn(ctx, r.db).Order("id").Find(&products).Error
	return products, err
}

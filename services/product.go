package services

import (
	"context"
	"strings"

	"kitchenpos/apperror"
	"kitchenpos/models"
)

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Create stores a product. Prices may be zero but never negative.
func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, apperror.New(apperror.CodeInvalidArgument, "product name is required")
	}
	if p.Price.IsNegative() {
		return nil, apperror.WithMetadata(apperror.CodeInvalidPrice, "product price must not be negative",
			map[string]string{"price": p.Price.String()})
	}
	return s.products.Save(ctx, &models.Product{Name: name, Price: p.Price})
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

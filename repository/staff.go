package repository

import (
	"context"
	"errors"

	"kitchenpos/apperror"
	"kitchenpos/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) (*models.Staff, error) {
	saved := *s
	if err := conn(ctx, r.db).Create(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var s models.Staff
	if err := conn(ctx, r.db).Where("email = ?", email).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.CodeNotFound, "staff member not found", err)
		}
		return nil, err
	}
	return &s, nil
}

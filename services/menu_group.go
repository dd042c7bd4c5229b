package services

import (
	"context"
	"strings"

	"kitchenpos/apperror"
	"kitchenpos/models"
)

type MenuGroupService struct {
	groups MenuGroupStore
}

func NewMenuGroupService(groups MenuGroupStore) *MenuGroupService {
	return &MenuGroupService{groups: groups}
}

func (s *MenuGroupService) Create(ctx context.Context, g *models.MenuGroup) (*models.MenuGroup, error) {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return nil, apperror.New(apperror.CodeInvalidArgument, "menu group name is required")
	}
	return s.groups.Save(ctx, &models.MenuGroup{Name: name})
}

func (s *MenuGroupService) List(ctx context.Context) ([]models.MenuGroup, error) {
	return s.groups.FindAll(ctx)
}

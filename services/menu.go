package services

import (
	"context"

	"kitchenpos/models"

	"go.uber.org/zap"
)

// MenuService creates and lists menus.
type MenuService struct {
	validator *MenuValidator
	menus     MenuStore
	lines     MenuProductStore
	tx        Transactor
}

func NewMenuService(groups MenuGroupLookup, products ProductLookup, menus MenuStore, lines MenuProductStore, tx Transactor) *MenuService {
	return &MenuService{
		validator: NewMenuValidator(groups, products),
		menus:     menus,
		lines:     lines,
		tx:        tx,
	}
}

// Create validates candidate and then writes the menu and its lines in one
// transaction. Nothing is written when validation fails. The returned menu
// carries the submitted price.
func (s *MenuService) Create(ctx context.Context, candidate *models.Menu) (*models.Menu, error) {
	if err := s.validator.Validate(ctx, candidate); err != nil {
		return nil, err
	}

	var created *models.Menu
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		menu, err := s.menus.Save(ctx, &models.Menu{
			Name:        candidate.Name,
			Price:       candidate.Price,
			MenuGroupID: candidate.MenuGroupID,
		})
		if err != nil {
			return err
		}

		menu.MenuProducts = make([]models.MenuProduct, 0, len(candidate.MenuProducts))
		for _, line := range candidate.MenuProducts {
			saved, err := s.lines.Save(ctx, &models.MenuProduct{
				MenuID:    menu.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
			if err != nil {
				return err
			}
			menu.MenuProducts = append(menu.MenuProducts, *saved)
		}
		created = menu
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("menu created",
		zap.Uint("menu_id", created.ID),
		zap.Uint("menu_group_id", created.MenuGroupID),
		zap.String("price", created.Price.String()),
		zap.Int("lines", len(created.MenuProducts)),
	)
	return created, nil
}

// List returns every menu in store order with its lines attached.
func (s *MenuService) List(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.menus.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range menus {
		lines, err := s.lines.FindAllByMenuID(ctx, menus[i].ID)
		if err != nil {
			return nil, err
		}
		menus[i].MenuProducts = lines
	}
	return menus, nil
}

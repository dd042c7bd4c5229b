package services

import (
	"context"

	"kitchenpos/models"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=services

// Transactor runs fn in one atomic unit of work. Port calls made with the ctx
// passed to fn take part in that unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MenuGroupLookup reports whether a menu group exists.
type MenuGroupLookup interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// MenuGroupStore persists menu groups.
type MenuGroupStore interface {
	MenuGroupLookup
	Save(ctx context.Context, g *models.MenuGroup) (*models.MenuGroup, error)
	FindAll(ctx context.Context) ([]models.MenuGroup, error)
}

// ProductLookup resolves products. A missing product is reported as an error
// coded apperror.CodeNotFound.
type ProductLookup interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

// ProductStore persists products.
type ProductStore interface {
	ProductLookup
	Save(ctx context.Context, p *models.Product) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

// MenuStore persists menu rows without their lines.
type MenuStore interface {
	Save(ctx context.Context, m *models.Menu) (*models.Menu, error)
	FindAll(ctx context.Context) ([]models.Menu, error)
}

// MenuProductStore persists menu composition lines.
type MenuProductStore interface {
	Save(ctx context.Context, mp *models.MenuProduct) (*models.MenuProduct, error)
	FindAllByMenuID(ctx context.Context, menuID uint) ([]models.MenuProduct, error)
}

// OrderTableLookup bulk-resolves order tables. Unknown ids are absent from
// the result rather than reported individually.
type OrderTableLookup interface {
	FindAllByIDIn(ctx context.Context, ids []uint) ([]models.OrderTable, error)
}

// OrderTableStore persists order tables.
type OrderTableStore interface {
	OrderTableLookup
	Save(ctx context.Context, t *models.OrderTable) (*models.OrderTable, error)
	FindAll(ctx context.Context) ([]models.OrderTable, error)
	FindAllByTableGroupID(ctx context.Context, groupID uint) ([]models.OrderTable, error)
	LinkToGroup(ctx context.Context, ids []uint, groupID uint) error
	UnlinkGroup(ctx context.Context, groupID uint) error
}

// TableGroupStore persists table groups without their member links.
type TableGroupStore interface {
	Save(ctx context.Context, g *models.TableGroup) (*models.TableGroup, error)
	FindByID(ctx context.Context, id uint) (*models.TableGroup, error)
}

// StaffStore persists staff accounts.
type StaffStore interface {
	Create(ctx context.Context, s *models.Staff) (*models.Staff, error)
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
}

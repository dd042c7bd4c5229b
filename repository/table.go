package repository

import (
	"context"

	"kitchenpos/models"

	"gorm.io/gorm"
)

// OrderTableRepository stores order tables.
//
// Grouping is not guarded against concurrent formation over the same tables:
// two transactions may both read a table as ungrouped and then link it. SQLite
// serialises writers, which prevents it in this deployment; a store with
// weaker isolation must lock the rows returned by FindAllByIDIn (SELECT ... FOR
// UPDATE) inside the grouping transaction.
type OrderTableRepository struct {
	db *gorm.DB
}

func NewOrderTableRepository(db *gorm.DB) *OrderTableRepository {
	return &OrderTableRepository{db: db}
}

func (r *OrderTableRepository) Save(ctx context.Context, t *models.OrderTable) (*models.OrderTable, error) {
	saved := *t
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *OrderTableRepository) FindAll(ctx context.Context) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	err := conn(ctx, r.db).Order("id").Find(&tables).Error
	return tables, err
}

// FindAllByIDIn returns the stored tables whose id is in ids. Missing ids are
// silently absent from the result.
func (r *OrderTableRepository) FindAllByIDIn(ctx context.Context, ids []uint) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	if len(ids) == 0 {
		return tables, nil
	}
	err := conn(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&tables).Error
	return tables, err
}

func (r *OrderTableRepository) FindAllByTableGroupID(ctx context.Context, groupID uint) ([]models.OrderTable, error) {
	var tables []models.OrderTable
	err := conn(ctx, r.db).Where("table_group_id = ?", groupID).Order("id").Find(&tables).Error
	return tables, err
}

// LinkToGroup sets the group link of the tables in ids and leaves every other
// column untouched.
func (r *OrderTableRepository) LinkToGroup(ctx context.Context, ids []uint, groupID uint) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&models.OrderTable{}).
		Where("id IN ?", ids).
		Update("table_group_id", groupID).Error
}

// UnlinkGroup clears the group link of every member of groupID.
func (r *OrderTableRepository) UnlinkGroup(ctx context.Context, groupID uint) error {
	return conn(ctx, r.db).Model(&models.OrderTable{}).
		Where("table_group_id = ?", groupID).
		Update("table_group_id", nil).Error
}

type TableGroupRepository struct {
	db *gorm.DB
}

func NewTableGroupRepository(db *gorm.DB) *TableGroupRepository {
	return &TableGroupRepository{db: db}
}

func (r *TableGroupRepository) Save(ctx context.Context, g *models.TableGroup) (*models.TableGroup, error) {
	saved := *g
	saved.OrderTables = nil
	if err := conn(ctx, r.db).Save(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TableGroupRepository) FindByID(ctx context.Context, id uint) (*models.TableGroup, error) {
	var g models.TableGroup
	if err := conn(ctx, r.db).First(&g, id).Error; err != nil {
		return nil, notFound(err, "table group", id)
	}
	return &g, nil
}

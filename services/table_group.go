package services

import (
	"context"
	"time"

	"kitchenpos/models"

	"go.uber.org/zap"
)

// TableGroupService forms, reads and dissolves table groups.
type TableGroupService struct {
	validator *TableGroupValidator
	groups    TableGroupStore
	tables    OrderTableStore
	tx        Transactor
	now       func() time.Time
}

func NewTableGroupService(groups TableGroupStore, tables OrderTableStore, tx Transactor) *TableGroupService {
	return &TableGroupService{
		validator: NewTableGroupValidator(tables),
		groups:    groups,
		tables:    tables,
		tx:        tx,
		now:       time.Now,
	}
}

// Create validates candidate, then saves the group and links every member
// table to it in one transaction. Only the link column of a member is written.
func (s *TableGroupService) Create(ctx context.Context, candidate *models.TableGroup) (*models.TableGroup, error) {
	members, err := s.validator.Validate(ctx, candidate)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, table := range members {
		ids = append(ids, table.ID)
	}

	var created *models.TableGroup
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		group, err := s.groups.Save(ctx, &models.TableGroup{CreatedAt: s.now()})
		if err != nil {
			return err
		}
		if err := s.tables.LinkToGroup(ctx, ids, group.ID); err != nil {
			return err
		}
		group.OrderTables, err = s.tables.FindAllByTableGroupID(ctx, group.ID)
		if err != nil {
			return err
		}
		created = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("table group formed",
		zap.Uint("table_group_id", created.ID),
		zap.Uints("order_table_ids", candidate.TableIDs()),
	)
	return created, nil
}

// Get returns the group with its current member tables.
func (s *TableGroupService) Get(ctx context.Context, id uint) (*models.TableGroup, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.tables.FindAllByTableGroupID(ctx, id)
	if err != nil {
		return nil, err
	}
	group.OrderTables = members
	return group, nil
}

// Ungroup unlinks every member table from the group in one transaction. The
// group record itself is kept.
func (s *TableGroupService) Ungroup(ctx context.Context, id uint) error {
	if _, err := s.groups.FindByID(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.tables.UnlinkGroup(ctx, id)
	})
	if err != nil {
		return err
	}

	zap.L().Info("table group dissolved", zap.Uint("table_group_id", id))
	return nil
}

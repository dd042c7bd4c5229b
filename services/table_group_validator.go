package services

import (
	"context"
	"strconv"

	"kitchenpos/apperror"
	"kitchenpos/models"
)

const minGroupTables = 2

// TableGroupValidator checks that a candidate group references at least two
// distinct tables and that all of them exist.
type TableGroupValidator struct {
	tables OrderTableLookup
}

func NewTableGroupValidator(tables OrderTableLookup) *TableGroupValidator {
	return &TableGroupValidator{tables: tables}
}

// Validate returns the stored tables matching the candidate's references.
// Occupancy and existing group membership are not checked.
func (v *TableGroupValidator) Validate(ctx context.Context, group *models.TableGroup) ([]models.OrderTable, error) {
	ids := group.TableIDs()
	if len(ids) < minGroupTables {
		return nil, apperror.WithMetadata(apperror.CodeInsufficientTables, "a table group needs at least two tables",
			map[string]string{"requested": strconv.Itoa(len(ids))})
	}

	resolved, err := v.tables.FindAllByIDIn(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(resolved) != len(ids) {
		return nil, apperror.WithMetadata(apperror.CodeUnresolvableTables, "some requested tables do not exist",
			map[string]string{"requested": strconv.Itoa(len(ids)), "resolved": strconv.Itoa(len(resolved))})
	}
	return resolved, nil
}

package services

import (
	"context"
	"strconv"

	"kitchenpos/apperror"
	"kitchenpos/models"
)

// OrderTableService registers dining tables. Occupancy changes are handled
// elsewhere.
type OrderTableService struct {
	tables OrderTableStore
}

func NewOrderTableService(tables OrderTableStore) *OrderTableService {
	return &OrderTableService{tables: tables}
}

// Create stores a new, ungrouped table. Any identity or group link on t is
// ignored.
func (s *OrderTableService) Create(ctx context.Context, t *models.OrderTable) (*models.OrderTable, error) {
	if t.NumberOfGuests < 0 {
		return nil, apperror.WithMetadata(apperror.CodeInvalidArgument, "number of guests must not be negative",
			map[string]string{"number_of_guests": strconv.Itoa(t.NumberOfGuests)})
	}
	return s.tables.Save(ctx, &models.OrderTable{
		NumberOfGuests: t.NumberOfGuests,
		Empty:          t.Empty,
	})
}

func (s *OrderTableService) List(ctx context.Context) ([]models.OrderTable, error) {
	return s.tables.FindAll(ctx)
}

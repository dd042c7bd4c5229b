package services

import (
	"context"
	"errors"
	"strconv"

	"kitchenpos/apperror"
	"kitchenpos/models"

	"github.com/shopspring/decimal"
)

// MenuValidator checks a candidate menu against its references. It only
// reads through its lookups.
type MenuValidator struct {
	groups   MenuGroupLookup
	products ProductLookup
}

func NewMenuValidator(groups MenuGroupLookup, products ProductLookup) *MenuValidator {
	return &MenuValidator{groups: groups, products: products}
}

// Validate returns nil when menu may be created. Checks run in order and the
// first violation is returned: price, menu group, products, composed price.
// Lookup failures other than a missing product are returned unchanged.
func (v *MenuValidator) Validate(ctx context.Context, menu *models.Menu) error {
	if !menu.Price.IsPositive() {
		return apperror.WithMetadata(apperror.CodeInvalidPrice, "menu price must be greater than zero",
			map[string]string{"price": menu.Price.String()})
	}

	ok, err := v.groups.ExistsByID(ctx, menu.MenuGroupID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.WithMetadata(apperror.CodeUnknownMenuGroup, "menu group does not exist",
			map[string]string{"menu_group_id": strconv.FormatUint(uint64(menu.MenuGroupID), 10)})
	}

	sum := decimal.Zero
	for _, line := range menu.MenuProducts {
		product, err := v.products.FindByID(ctx, line.ProductID)
		if errors.Is(err, apperror.ErrNotFound) || (err == nil && product == nil) {
			return apperror.WithMetadata(apperror.CodeUnknownProduct, "product does not exist",
				map[string]string{"product_id": strconv.FormatUint(uint64(line.ProductID), 10)})
		}
		if err != nil {
			return err
		}
		sum = sum.Add(product.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	if menu.Price.GreaterThan(sum) {
		return apperror.WithMetadata(apperror.CodePriceExceedsComposition, "menu price exceeds the price of its products",
			map[string]string{"price": menu.Price.String(), "sum": sum.String()})
	}
	return nil
}

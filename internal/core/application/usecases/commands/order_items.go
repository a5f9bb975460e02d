package commands

import (
	"fmt"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"
)

// OrderItemInput is a line item as submitted by a client. Quantity is
// optional: anything below 1 (including the zero value) becomes 1.
type OrderItemInput struct {
	Product  string
	Quantity int
}

func buildItems(inputs []OrderItemInput) ([]order.Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	for idx, in := range inputs {
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}

		item, err := order.NewItem(in.Product, quantity)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", idx, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func validateOrderID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}

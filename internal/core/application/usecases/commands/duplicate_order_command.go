package commands

import (
	"errors"

	"roomservice/internal/pkg/guard"
)

var ErrDuplicateOrderCommandIsNotConstructed = errors.New(
	"DuplicateOrderCommand must be created via NewDuplicateOrderCommand constructor",
)

// DuplicateOrderCommand asks for a new active copy of an existing order.
type DuplicateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

func NewDuplicateOrderCommand(orderID int64) (DuplicateOrderCommand, error) {
	if err := validateOrderID("orderId", orderID); err != nil {
		return DuplicateOrderCommand{}, err
	}

	return DuplicateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DuplicateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateOrderCommandIsNotConstructed)
}

// OrderID returns the source order's identifier.
func (c DuplicateOrderCommand) OrderID() int64 {
	return c.orderID
}

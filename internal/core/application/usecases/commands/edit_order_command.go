package commands

import (
	"errors"
	"strings"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"
	"roomservice/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the room, note and complete item list of an
// active order. It is a full replace: items not resent are dropped.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	room    string
	note    string
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewEditOrderCommand validates the request shape.
func NewEditOrderCommand(orderID int64, room, note string, items []OrderItemInput) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRoom(room),
		cmd.setItems(items),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c EditOrderCommand) Room() string {
	return c.room
}

func (c EditOrderCommand) Note() string {
	return c.note
}

func (c EditOrderCommand) Items() []order.Item {
	return c.items
}

func (c *EditOrderCommand) setOrderID(id int64) error {
	if err := validateOrderID("orderId", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *EditOrderCommand) setRoom(room string) error {
	room = strings.TrimSpace(room)
	if room == "" {
		return errs.NewValueIsRequiredError("room")
	}
	c.room = room
	return nil
}

func (c *EditOrderCommand) setItems(inputs []OrderItemInput) error {
	items, err := buildItems(inputs)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

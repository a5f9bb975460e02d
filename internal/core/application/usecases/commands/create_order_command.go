package commands

import (
	"errors"
	"strings"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"
	"roomservice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a guest placing a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ali Veli", "12", "", []OrderItemInput{
//	    {Product: "Tea", Quantity: 2},
//	}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, rolePolicy)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userName        string
	room            string
	note            string
	items           []order.Item
	originalOrderID *int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. userName and room must
// not be blank, at least one item with a product name is required. All
// violations are reported together.
func NewCreateOrderCommand(
	userName, room, note string,
	items []OrderItemInput,
	originalOrderID *int64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserName(userName),
		cmd.setRoom(room),
		cmd.setItems(items),
		cmd.setOriginalOrderID(originalOrderID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserName() string {
	return c.userName
}

func (c CreateOrderCommand) Room() string {
	return c.room
}

func (c CreateOrderCommand) Note() string {
	return c.note
}

// Items returns the normalized line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// OriginalOrderID returns the order this one is derived from, or nil.
func (c CreateOrderCommand) OriginalOrderID() *int64 {
	return c.originalOrderID
}

func (c *CreateOrderCommand) setUserName(userName string) error {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	c.userName = userName
	return nil
}

func (c *CreateOrderCommand) setRoom(room string) error {
	room = strings.TrimSpace(room)
	if room == "" {
		return errs.NewValueIsRequiredError("room")
	}
	c.room = room
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	items, err := buildItems(inputs)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setOriginalOrderID(id *int64) error {
	if id == nil {
		return nil
	}
	if err := validateOrderID("originalOrderId", *id); err != nil {
		return err
	}
	c.originalOrderID = new(int64)
	*c.originalOrderID = *id
	return nil
}

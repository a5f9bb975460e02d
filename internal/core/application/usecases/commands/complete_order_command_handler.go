package commands

import (
	"context"
	"time"
)

// CompleteOrderCommandHandler performs the active -> completed transition.
// No transaction is opened: the repository applies the transition as one
// conditional auto-committed statement, so concurrent completions of the same
// order cannot both succeed.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError for unknown orders and
// errs.InvalidStateError when the order was already completed.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return uow.OrderRepository().MarkCompleted(ctx, cmd.OrderID(), time.Now().UTC())
}

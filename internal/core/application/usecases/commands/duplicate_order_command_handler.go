package commands

import (
	"context"
	"time"
)

// DuplicateOrderCommandHandler copies an order into a new active order that
// links back to it. The source is only read; calling it repeatedly yields a
// distinct order each time.
type DuplicateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDuplicateOrderCommandHandler(uowFactory OrderUoWFactory) DuplicateOrderCommandHandler {
	return DuplicateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identifier of the new order, or errs.ObjectNotFoundError
// when the source does not exist.
func (h *DuplicateOrderCommandHandler) Handle(ctx context.Context, cmd DuplicateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	source, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	duplicate, err := source.Duplicate(time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, duplicate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return duplicate.ID(), nil
}

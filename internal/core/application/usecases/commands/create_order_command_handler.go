package commands

import (
	"context"
	"time"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/core/domain/model/user"
	"roomservice/internal/core/domain/services"
	"roomservice/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders. The placing user is upserted
// through the registry and the order with all its items is inserted in the
// same transaction: either everything becomes visible or nothing does.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, rolePolicy)
//	cmd, _ := NewCreateOrderCommand("Ali Veli", "12", "", items, nil)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	rolePolicy services.RolePolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning users and orders and the role policy used
// to recompute the user's role on every upsert.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, rolePolicy services.RolePolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		rolePolicy: rolePolicy,
	}
}

// Handle processes the command and returns the new order's identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.UserName(), h.rolePolicy.RoleFor(cmd.UserName()))
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.UserName(), cmd.Room(), cmd.Note(), cmd.Items(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Upsert(ctx, u); err != nil {
		return 0, err
	}

	if err = o.AssignUser(u.ID()); err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	if originalID := cmd.OriginalOrderID(); originalID != nil {
		exists, existsErr := orderRepo.Exists(ctx, *originalID)
		if existsErr != nil {
			return 0, existsErr
		}
		if !exists {
			return 0, errs.NewObjectNotFoundError("order", *originalID)
		}
		if err = o.LinkOriginal(*originalID); err != nil {
			return 0, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}

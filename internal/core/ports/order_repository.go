// Package ports defines repository interfaces for the room service domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"roomservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its items are always written together.
type OrderRepository interface {
	// Add persists a new order and all of its items and assigns the
	// store identity to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists room, note and status of an existing order and
	// replaces its item collection with the aggregate's items.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems removes every item owned by the order and inserts the
	// given set. Callers run it inside a unit of work so the collection is
	// never observed half replaced.
	ReplaceItems(ctx context.Context, orderID int64, items []order.Item) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError when the id does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// Exists reports whether an order with the id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// MarkCompleted moves an active order to completed with a single
	// conditional statement. It returns errs.ObjectNotFoundError for unknown
	// ids and errs.InvalidStateError when the order is no longer active.
	MarkCompleted(ctx context.Context, id int64, at time.Time) error
}

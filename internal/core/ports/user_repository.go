package ports

import (
	"context"

	"roomservice/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract of the user registry.
// Users are only written as a side effect of order placement.
type UserRepository interface {
	// Upsert inserts the user or, when the full name already exists, updates
	// its role. It is a single atomic statement and assigns the resulting
	// identity to the aggregate in both cases.
	Upsert(ctx context.Context, aggregate *user.User) error
}

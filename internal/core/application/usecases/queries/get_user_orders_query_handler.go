package queries

import (
	"context"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a user's orders with their items.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns the orders sorted by creation time, newest first. Orders
// created at the same instant are ordered by descending id.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := orderViewSelect + ` WHERE o.user_name = ?`
	args := []any{query.UserName()}
	if query.Status() != order.Unknown {
		stmt += ` AND o.status = ?`
		args = append(args, query.Status().String())
	}
	stmt += ` ORDER BY o.created_at DESC, o.id DESC, i.id ASC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreError("list user orders", err)
	}

	return scanOrderViews(rows)
}

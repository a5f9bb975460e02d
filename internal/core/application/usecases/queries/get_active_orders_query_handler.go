package queries

import (
	"context"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders, oldest first, so the
// admin view works through the queue in placement order.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list active orders: %w", err)
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSelect+`
		WHERE o.status = ?
		ORDER BY o.created_at ASC, o.id ASC, i.id ASC
	`, order.Active.String()).Rows()
	if err != nil {
		return nil, errs.NewStoreError("list active orders", err)
	}

	return scanOrderViews(rows)
}

package queries

import (
	"context"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCompletedOrdersQueryHandler reads completed orders, most recently
// completed first.
type GetCompletedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCompletedOrdersQueryHandler(db *gorm.DB) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{db: db}
}

// Handle sorts by completion time descending. A completed row always carries
// completed_at, but NULLS LAST keeps the ordering defined for legacy rows.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSelect+`
		WHERE o.status = ?
		ORDER BY o.completed_at DESC NULLS LAST, o.id DESC, i.id ASC
	`, order.Completed.String()).Rows()
	if err != nil {
		return nil, errs.NewStoreError("list completed orders", err)
	}

	return scanOrderViews(rows)
}

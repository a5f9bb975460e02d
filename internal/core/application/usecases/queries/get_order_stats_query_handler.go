package queries

import (
	"context"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts in a single statement.
// It backs the admin stats endpoint and the periodic metrics job.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var stats GetOrderStatsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS active,
			COUNT(*) FILTER (WHERE status = ?) AS completed
		FROM orders
	`, order.Active.String(), order.Completed.String()).Row().Scan(&stats.Active, &stats.Completed)
	if err != nil {
		return GetOrderStatsQueryResponse{}, errs.NewStoreError("count orders", err)
	}

	return stats, nil
}

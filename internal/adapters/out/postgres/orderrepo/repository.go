package orderrepo

import (
	"context"
	"errors"
	"time"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// It runs on whatever *gorm.DB it was given: a transaction handle inside a
// unit of work, or the plain pool for auto-committed statements.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row and its items and assigns the generated id to
// the aggregate. GORM creates the Items association in the same statement
// batch, so the caller's transaction sees either both or neither.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreError("add order", err)
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves room, note and lifecycle fields, then replaces the items.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"room":         dto.Room,
			"note":         dto.Note,
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return errs.NewStoreError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return r.ReplaceItems(ctx, dto.ID, aggregate.Items())
}

// ReplaceItems deletes every item of the order and inserts the new set.
func (r *GormOrderRepository) ReplaceItems(ctx context.Context, orderID int64, items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewStoreError("delete order items", err)
	}

	dtos := itemsFromDomain(orderID, items)
	if err := db.Create(&dtos).Error; err != nil {
		return errs.NewStoreError("insert order items", err)
	}

	return nil
}

// Get retrieves an order by ID together with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate is Get with the order row locked FOR UPDATE. The lock is held
// until the surrounding transaction commits or rolls back.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStoreError("get order", err)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("id").
		Find(&dto.Items).Error; err != nil {
		return nil, errs.NewStoreError("get order items", err)
	}

	return toDomain(dto)
}

// Exists reports whether an order with the id exists.
func (r *GormOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errs.NewStoreError("check order", err)
	}
	return count > 0, nil
}

// MarkCompleted moves an active order to completed in one conditional
// statement. Of two concurrent callers exactly one sees a changed row; the
// other falls through to classification and gets an InvalidStateError.
func (r *GormOrderRepository) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id, order.Active.String()).
		Updates(map[string]any{
			"status":       order.Completed.String(),
			"completed_at": at,
		})
	if result.Error != nil {
		return errs.NewStoreError("complete order", result.Error)
	}

	if result.RowsAffected > 0 {
		return nil
	}

	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("order", id)
	}

	return errs.NewInvalidStateError("order", order.Completed.String(), "complete")
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"roomservice/internal/pkg/errs"
)

// ItemView is a line item of an OrderView.
type ItemView struct {
	Product  string
	Quantity int
}

// OrderView is the read model of an order together with its items.
//
// Example:
//
//	view := OrderView{
//	    ID:       1,
//	    UserName: "Ali Veli",
//	    Room:     "12",
//	    Status:   "active",
//	    Items:    []ItemView{{Product: "Tea", Quantity: 2}},
//	}
type OrderView struct {
	ID              int64
	UserName        string
	Room            string
	Note            string
	Status          string
	OriginalOrderID *int64
	CreatedAt       time.Time
	CompletedAt     *time.Time
	Items           []ItemView
}

// orderViewSelect joins every order with its items. Each listing appends its
// own WHERE and ORDER BY; the ORDER BY must end with i.id so items keep their
// insertion order inside an order.
const orderViewSelect = `
	SELECT
		o.id,
		o.user_name,
		o.room,
		o.note,
		o.status,
		o.original_order_id,
		o.created_at,
		o.completed_at,
		i.product_name,
		i.quantity
	FROM orders o
	INNER JOIN order_items i ON i.order_id = o.id
`

// scanOrderViews folds joined order/item rows into one OrderView per order.
// Rows of the same order are contiguous because every listing sorts by a key
// that ends with o.id before i.id; the first-seen order is preserved.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			view            OrderView
			originalOrderID sql.NullInt64
			completedAt     sql.NullTime
			item            ItemView
		)

		if err := rows.Scan(
			&view.ID,
			&view.UserName,
			&view.Room,
			&view.Note,
			&view.Status,
			&originalOrderID,
			&view.CreatedAt,
			&completedAt,
			&item.Product,
			&item.Quantity,
		); err != nil {
			return nil, errs.NewStoreError("scan order view", err)
		}

		pos, seen := index[view.ID]
		if !seen {
			if originalOrderID.Valid {
				view.OriginalOrderID = &originalOrderID.Int64
			}
			if completedAt.Valid {
				at := completedAt.Time.UTC()
				view.CompletedAt = &at
			}
			view.CreatedAt = view.CreatedAt.UTC()
			view.Items = make([]ItemView, 0, 1)

			pos = len(views)
			index[view.ID] = pos
			views = append(views, view)
		}

		views[pos].Items = append(views[pos].Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreError("read order views", err)
	}

	return views, nil
}

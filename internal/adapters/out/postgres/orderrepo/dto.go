// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The schema itself is owned by the migrations package; the tags only describe
// the mapping.
type OrderDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	UserID          *int64
	UserName        string
	Room            string
	Note            string
	Status          string
	OriginalOrderID *int64
	CreatedAt       time.Time
	CompletedAt     *time.Time
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row. Rows are owned by exactly one order
// and are replaced as a whole when the order is edited.
type OrderItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductName string
	Quantity    int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

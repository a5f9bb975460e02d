package orderrepo

import (
	"fmt"

	"roomservice/internal/core/domain/model/order"
)

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID(),
		UserID:          aggregate.UserID(),
		UserName:        aggregate.UserName(),
		Room:            aggregate.Room(),
		Note:            aggregate.Note(),
		Status:          aggregate.Status().String(),
		OriginalOrderID: aggregate.OriginalOrderID(),
		CreatedAt:       aggregate.CreatedAt(),
		CompletedAt:     aggregate.CompletedAt(),
	}
	dto.Items = itemsFromDomain(aggregate.ID(), aggregate.Items())
	return dto
}

func itemsFromDomain(orderID int64, items []order.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:     orderID,
			ProductName: item.Product(),
			Quantity:    item.Quantity(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity)
		if itemErr != nil {
			return nil, fmt.Errorf("order %d item %d: %w", dto.ID, itemDTO.ID, itemErr)
		}
		items = append(items, item)
	}

	var completedAt = dto.CompletedAt
	if completedAt != nil {
		at := completedAt.UTC()
		completedAt = &at
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.UserName,
		dto.Room,
		dto.Note,
		status,
		dto.OriginalOrderID,
		dto.CreatedAt.UTC(),
		completedAt,
		items,
	)
}

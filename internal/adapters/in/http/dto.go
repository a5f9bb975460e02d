package http

import (
	"time"

	"roomservice/internal/core/application/usecases/commands"
	"roomservice/internal/core/application/usecases/queries"
)

type ItemRequest struct {
	Product  string `json:"product"`
	Quantity *int   `json:"quantity,omitempty"`
}

type CreateOrderRequest struct {
	UserName        string        `json:"userName"`
	Room            string        `json:"room"`
	Note            string        `json:"note"`
	OriginalOrderID *int64        `json:"originalOrderId,omitempty"`
	Items           []ItemRequest `json:"items"`
}

type EditOrderRequest struct {
	Room  string        `json:"room"`
	Note  string        `json:"note"`
	Items []ItemRequest `json:"items"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID              int64          `json:"id"`
	UserName        string         `json:"userName"`
	Room            string         `json:"room"`
	Note            string         `json:"note"`
	Status          string         `json:"status"`
	OriginalOrderID *int64         `json:"originalOrderId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	Items           []ItemResponse `json:"items"`
}

type OrderStatsResponse struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

func toItemInputs(items []ItemRequest) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		input := commands.OrderItemInput{Product: item.Product}
		if item.Quantity != nil {
			input.Quantity = *item.Quantity
		}
		inputs = append(inputs, input)
	}
	return inputs
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(views))
	for i, view := range views {
		items := make([]ItemResponse, len(view.Items))
		for j, item := range view.Items {
			items[j] = ItemResponse{Product: item.Product, Quantity: item.Quantity}
		}

		response[i] = OrderResponse{
			ID:              view.ID,
			UserName:        view.UserName,
			Room:            view.Room,
			Note:            view.Note,
			Status:          view.Status,
			OriginalOrderID: view.OriginalOrderID,
			CreatedAt:       view.CreatedAt,
			CompletedAt:     view.CompletedAt,
			Items:           items,
		}
	}
	return response
}

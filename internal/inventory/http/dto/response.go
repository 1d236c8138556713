package dto

import (
	"time"

	"github.com/stockpile/stockpile/internal/inventory/domain"
)

// ItemResponse represents an inventory item in API responses.
type ItemResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   int64     `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalValue float64   `json:"total_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListItemsResponse represents a page of inventory items.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// TotalValueResponse represents the aggregate value of the inventory.
type TotalValueResponse struct {
	TotalValue float64 `json:"total_value"`
}

// MapItemToResponse converts a domain item to an API response.
func MapItemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalValue: item.TotalValue,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// MapItemsToListResponse converts a slice of domain items to a paged API response.
func MapItemsToListResponse(items []*domain.Item, offset, limit int) ListItemsResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, MapItemToResponse(item))
	}
	return ListItemsResponse{
		Items:  responses,
		Offset: offset,
		Limit:  limit,
	}
}
